package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/attendance"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
)

type ServiceImpl struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) attendance.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, logger: logger}
}

// Today implements attendance.Service.
func (s *ServiceImpl) Today(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	query := url.Values{
		"date":       {date},
		"employeeId": {employeeID},
	}

	var resp attendance.ListResponse
	if err := s.client.Get(ctx, "/attendance/all-attendance", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch today's attendance: %w", err)
	}

	if len(resp.Attendance) == 0 {
		return nil, nil
	}
	rec := resp.Attendance[0]
	return &rec, nil
}

// Month implements attendance.Service.
func (s *ServiceImpl) Month(ctx context.Context, employeeID, month string) ([]attendance.Record, error) {
	query := url.Values{
		"month":      {month},
		"employeeId": {employeeID},
	}

	var resp attendance.ListResponse
	if err := s.client.Get(ctx, "/attendance/all-attendance", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch month attendance: %w", err)
	}
	return resp.Attendance, nil
}

// PunchIn implements attendance.Service.
func (s *ServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.client.Post(ctx, "/attendance/create-attendance", req, nil); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "punch-in recorded",
		slog.String("employee_id", req.Employee),
		slog.String("date", req.AttendanceDate),
		slog.String("time", req.PunchInTime),
	)
	return nil
}

// PunchOut implements attendance.Service.
func (s *ServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.client.Put(ctx, "/attendance/update-attendance", req, nil); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "punch-out recorded",
		slog.String("employee_id", req.Employee),
		slog.String("date", req.AttendanceDate),
		slog.String("time", req.PunchOutTime),
	)
	return nil
}
