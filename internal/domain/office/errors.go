package office

import "errors"

var (
	// ErrRegistryFetch means the office registry could not be read.
	// Geofence evaluation treats this as "not in office", never as a pass.
	ErrRegistryFetch   = errors.New("failed to fetch office locations")
	ErrOfficeNotFound  = errors.New("office location not found")
	ErrInvalidLocation = errors.New("office location has invalid coordinates")
)
