package salary

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/salary"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type ServiceImpl struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) salary.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, logger: logger}
}

// Slip implements salary.Service.
func (s *ServiceImpl) Slip(ctx context.Context, employeeID, month string) (*salary.Slip, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	query := url.Values{
		"employeeId": {employeeID},
		"month":      {month},
	}
	var resp salary.SlipResponse
	if err := s.client.Get(ctx, "/salary/all-salary", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch salary slip: %w", err)
	}

	if len(resp.Salary) == 0 {
		return nil, nil
	}
	slip := resp.Salary[0]
	return &slip, nil
}
