package location

import "context"

// Static always reports the configured coordinate. Used for fixed
// punch terminals where the device does not move.
type Static struct {
	Coordinate Coordinate
}

func NewStatic(lat, lng float64) *Static {
	return &Static{Coordinate: Coordinate{Latitude: lat, Longitude: lng}}
}

func (s *Static) RequestPermission(ctx context.Context) (Permission, error) {
	return PermissionGranted, nil
}

func (s *Static) Current(ctx context.Context, opts Options) (Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return Coordinate{}, err
	}
	return s.Coordinate, nil
}
