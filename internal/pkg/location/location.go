package location

import (
	"context"
	"errors"
	"time"
)

// Coordinate is a WGS 84 geographic point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Options controls a single acquisition attempt.
type Options struct {
	HighAccuracy bool
	// Timeout bounds how long the provider may wait for a fix.
	Timeout time.Duration
	// MaxAge rejects cached fixes older than this.
	MaxAge time.Duration
}

// Permission is the platform's answer to a location permission request.
type Permission int

const (
	PermissionGranted Permission = iota
	// PermissionDenied means denied this time; the caller may ask again.
	PermissionDenied
	// PermissionDeniedForever means the user must change system settings;
	// re-prompting is pointless.
	PermissionDeniedForever
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("failed to retrieve current location")
	ErrStaleFix         = errors.New("location fix is older than the allowed max age")
)

// Provider produces a best-effort current coordinate, or a definite
// failure reason. RequestPermission must be called before Current.
// Providers do not retry internally.
type Provider interface {
	RequestPermission(ctx context.Context) (Permission, error)
	Current(ctx context.Context, opts Options) (Coordinate, error)
}
