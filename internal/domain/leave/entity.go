package leave

// Request is a leave application as the backend reports it.
type Request struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employee"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"leaveStatus"`
}

// CompOff is a compensatory-off claim for work done on a holiday.
type CompOff struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employee"`
	WorkedDate string `json:"workedDate"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
}

// Leave request statuses used by the backend.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)
