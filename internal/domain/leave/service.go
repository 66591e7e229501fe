package leave

import "context"

type Service interface {
	Apply(ctx context.Context, req ApplyRequest) error
	List(ctx context.Context, employeeID string) ([]Request, error)
	RequestCompOff(ctx context.Context, req CompOffRequest) error
	ListCompOff(ctx context.Context, employeeID string) ([]CompOff, error)
}
