package punch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/attendance"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/clock"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/location"
)

// ErrOutsideGeofence means the acquired coordinate is not within the
// allowed radius of any registered office. A registry fetch failure also
// resolves here: an unreadable registry never passes a punch.
var ErrOutsideGeofence = errors.New("attendance can only be marked in office")

// GeofenceEvaluator is the decision surface of the geofence service.
type GeofenceEvaluator interface {
	WithinAnyOffice(ctx context.Context, point location.Coordinate) (bool, error)
}

// Action is the write a punch attempt performs.
type Action int

const (
	ActionNone Action = iota
	ActionPunchIn
	ActionPunchOut
)

func (a Action) String() string {
	switch a {
	case ActionPunchIn:
		return "punch-in"
	case ActionPunchOut:
		return "punch-out"
	default:
		return "none"
	}
}

// Result reports a completed punch attempt. NeedsRefresh tells the
// caller to refetch today's record from the backend; the coordinator
// never mutates local state itself.
type Result struct {
	Action       Action
	NeedsRefresh bool
}

// Coordinator runs one punch attempt end to end: derive the state from
// today's record, acquire a location, check the geofence, then issue
// exactly one attendance write. Nothing is retried automatically.
type Coordinator struct {
	attendance attendance.Service
	geofence   GeofenceEvaluator
	provider   location.Provider
	clock      clock.Clock
	opts       location.Options
	logger     *slog.Logger
}

func NewCoordinator(
	attendanceSvc attendance.Service,
	geofence GeofenceEvaluator,
	provider location.Provider,
	businessClock clock.Clock,
	opts location.Options,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		attendance: attendanceSvc,
		geofence:   geofence,
		provider:   provider,
		clock:      businessClock,
		opts:       opts,
		logger:     logger,
	}
}

// Punch performs the one legal transition for the employee's current
// state, or fails with a typed reason and no write. The caller owns and
// supplies today's record.
func (c *Coordinator) Punch(ctx context.Context, employeeID string, today *attendance.Record) (Result, error) {
	action := ActionPunchIn
	if attendance.StateOf(today) == attendance.StatePunchedIn {
		action = ActionPunchOut
	}
	return c.Attempt(ctx, employeeID, today, action)
}

// Attempt performs one named punch action, enforcing the state machine:
// punch-in only from no-record, punch-out only from punched-in, nothing
// once the day is closed. A record never regresses.
func (c *Coordinator) Attempt(ctx context.Context, employeeID string, today *attendance.Record, action Action) (Result, error) {
	state := attendance.StateOf(today)
	switch {
	case state == attendance.StatePunchedInAndOut:
		return Result{}, attendance.ErrAlreadyMarked
	case action == ActionPunchIn && state != attendance.StateNoRecord:
		return Result{}, attendance.ErrInvalidTransition
	case action == ActionPunchOut && state != attendance.StatePunchedIn:
		return Result{}, attendance.ErrInvalidTransition
	case action != ActionPunchIn && action != ActionPunchOut:
		return Result{}, attendance.ErrInvalidTransition
	}

	point, err := c.acquire(ctx)
	if err != nil {
		return Result{}, err
	}

	inOffice, err := c.geofence.WithinAnyOffice(ctx, point)
	if err != nil {
		// Fail closed: an unreadable registry reads as "not in office".
		return Result{}, fmt.Errorf("%w (%v)", ErrOutsideGeofence, err)
	}
	if !inOffice {
		return Result{}, ErrOutsideGeofence
	}

	if err := c.write(ctx, action, employeeID); err != nil {
		return Result{}, err
	}

	c.logger.InfoContext(ctx, "punch recorded",
		slog.String("employee_id", employeeID),
		slog.String("action", action.String()),
	)
	return Result{Action: action, NeedsRefresh: true}, nil
}

func (c *Coordinator) acquire(ctx context.Context) (location.Coordinate, error) {
	perm, err := c.provider.RequestPermission(ctx)
	if err != nil {
		return location.Coordinate{}, fmt.Errorf("%w: %v", location.ErrPermissionDenied, err)
	}
	switch perm {
	case location.PermissionGranted:
	case location.PermissionDeniedForever:
		return location.Coordinate{}, fmt.Errorf("%w: enable location access in system settings", location.ErrPermissionDenied)
	default:
		return location.Coordinate{}, location.ErrPermissionDenied
	}

	point, err := c.provider.Current(ctx, c.opts)
	if err != nil {
		return location.Coordinate{}, err
	}
	return point, nil
}

func (c *Coordinator) write(ctx context.Context, action Action, employeeID string) error {
	date := c.clock.Today()
	now := c.clock.NowHHMM()

	var err error
	switch action {
	case ActionPunchIn:
		err = c.attendance.PunchIn(ctx, attendance.PunchInRequest{
			Employee:       employeeID,
			AttendanceDate: date,
			PunchInTime:    now,
		})
	case ActionPunchOut:
		err = c.attendance.PunchOut(ctx, attendance.PunchOutRequest{
			Employee:       employeeID,
			AttendanceDate: date,
			PunchOutTime:   now,
		})
	}
	if err != nil {
		return fmt.Errorf("%w: %v", attendance.ErrWriteFailed, err)
	}
	return nil
}
