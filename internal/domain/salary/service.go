package salary

import "context"

type Service interface {
	// Slip fetches the employee's statement for a YYYY-MM month, or nil
	// when the backend has not generated one yet.
	Slip(ctx context.Context, employeeID, month string) (*Slip, error)
}
