package office

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/office"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
)

type ServiceImpl struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) office.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, logger: logger}
}

// All implements office.Service. The registry is fetched fresh on every
// call; callers must not cache it across geofence evaluations.
func (s *ServiceImpl) All(ctx context.Context) ([]office.Location, error) {
	var resp office.ListResponse
	if err := s.client.Get(ctx, "/officeLocation/all-officeLocation", nil, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", office.ErrRegistryFetch, err)
	}
	return resp.OfficeLocation, nil
}

// Create implements office.Service.
func (s *ServiceImpl) Create(ctx context.Context, req office.UpsertRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.client.Post(ctx, "/officeLocation/create-officeLocation", req, nil); err != nil {
		return fmt.Errorf("failed to create office location: %w", err)
	}
	s.logger.InfoContext(ctx, "office location created", slog.String("name", req.Name))
	return nil
}

// Update implements office.Service.
func (s *ServiceImpl) Update(ctx context.Context, id string, req office.UpsertRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.client.Put(ctx, "/officeLocation/update-officeLocation/"+id, req, nil); err != nil {
		return fmt.Errorf("failed to update office location %s: %w", id, err)
	}
	return nil
}

// Delete implements office.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/officeLocation/delete-officeLocation/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete office location %s: %w", id, err)
	}
	return nil
}
