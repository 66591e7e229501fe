package attendance

// Record is one employee's attendance for one business day, as the
// backend reports it. It does not exist until punch-in, gains a
// punch-out time from exactly one later write, and is never touched
// again the same day.
type Record struct {
	ID             string  `json:"_id,omitempty"`
	EmployeeID     string  `json:"employee"`
	AttendanceDate string  `json:"attendanceDate"`
	PunchInTime    *string `json:"punchInTime,omitempty"`
	PunchOutTime   *string `json:"punchOutTime,omitempty"`
}

// State is the position of a day's record in the punch state machine.
// A record only ever moves forward: StateNoRecord, StatePunchedIn,
// then StatePunchedInAndOut, terminal for the day.
type State int

const (
	StateNoRecord State = iota
	StatePunchedIn
	StatePunchedInAndOut
)

func (s State) String() string {
	switch s {
	case StateNoRecord:
		return "no-record"
	case StatePunchedIn:
		return "punched-in"
	case StatePunchedInAndOut:
		return "punched-in-and-out"
	default:
		return "unknown"
	}
}

// StateOf derives the state once from today's record. A nil record means
// the employee has not punched in yet.
func StateOf(rec *Record) State {
	switch {
	case rec == nil || rec.PunchInTime == nil || *rec.PunchInTime == "":
		return StateNoRecord
	case rec.PunchOutTime == nil || *rec.PunchOutTime == "":
		return StatePunchedIn
	default:
		return StatePunchedInAndOut
	}
}
