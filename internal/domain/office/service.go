package office

import "context"

// Service is the office-location surface of the EMS backend. All reads
// the geofence performs go through All; the admin operations manage the
// registry itself.
type Service interface {
	All(ctx context.Context) ([]Location, error)
	Create(ctx context.Context, req UpsertRequest) error
	Update(ctx context.Context, id string, req UpsertRequest) error
	Delete(ctx context.Context, id string) error
}
