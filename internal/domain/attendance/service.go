package attendance

import "context"

// Service is the attendance surface of the EMS backend. The backend
// owns every record; this client only reads and issues punch writes.
type Service interface {
	// Today returns the employee's record for the given business date,
	// or nil when no record exists yet.
	Today(ctx context.Context, employeeID, date string) (*Record, error)

	// Month lists the employee's records for a YYYY-MM month.
	Month(ctx context.Context, employeeID, month string) ([]Record, error)

	// PunchIn creates today's record.
	PunchIn(ctx context.Context, req PunchInRequest) error

	// PunchOut closes today's record.
	PunchOut(ctx context.Context, req PunchOutRequest) error
}
