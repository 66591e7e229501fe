package leave

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/leave"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
)

type ServiceImpl struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) leave.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, logger: logger}
}

// Apply implements leave.Service.
func (s *ServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.client.Post(ctx, "/leave/create-leave", req, nil); err != nil {
		return fmt.Errorf("%w: %v", leave.ErrApplyFailed, err)
	}
	s.logger.InfoContext(ctx, "leave requested",
		slog.String("employee_id", req.Employee),
		slog.String("from", req.StartDate),
		slog.String("to", req.EndDate),
	)
	return nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID string) ([]leave.Request, error) {
	query := url.Values{"employeeId": {employeeID}}
	var resp leave.ListResponse
	if err := s.client.Get(ctx, "/leave/all-leave", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}
	return resp.Leaves, nil
}

// RequestCompOff implements leave.Service.
func (s *ServiceImpl) RequestCompOff(ctx context.Context, req leave.CompOffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.client.Post(ctx, "/compOff/create-compOff", req, nil); err != nil {
		return fmt.Errorf("%w: %v", leave.ErrApplyFailed, err)
	}
	return nil
}

// ListCompOff implements leave.Service.
func (s *ServiceImpl) ListCompOff(ctx context.Context, employeeID string) ([]leave.CompOff, error) {
	query := url.Values{"employeeId": {employeeID}}
	var resp leave.CompOffListResponse
	if err := s.client.Get(ctx, "/compOff/all-compOff", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch comp-off requests: %w", err)
	}
	return resp.CompOffs, nil
}
