package geofence

import (
	"context"
	"log/slog"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/office"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/geo"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/location"
)

// DefaultRadiusMeters is how close to an office a punch must happen.
const DefaultRadiusMeters = 20

// Evaluator decides whether a coordinate lies within the allowed radius
// of any registered office. The registry is re-fetched on every
// evaluation: office lists change, and a stale pass is worse than an
// extra read.
type Evaluator struct {
	offices      office.Service
	radiusMeters float64
	logger       *slog.Logger
}

func NewEvaluator(offices office.Service, radiusMeters float64, logger *slog.Logger) *Evaluator {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		offices:      offices,
		radiusMeters: radiusMeters,
		logger:       logger,
	}
}

// WithinAnyOffice reports whether point is within the radius of any
// office. When the registry cannot be read it fails closed: the boolean
// is false and the fetch error is returned for display, never a pass.
// Offices with unparseable coordinates are skipped, not fatal.
func (e *Evaluator) WithinAnyOffice(ctx context.Context, point location.Coordinate) (bool, error) {
	offices, err := e.offices.All(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "office registry fetch failed, treating as outside geofence",
			slog.Any("error", err),
		)
		return false, err
	}

	for _, o := range offices {
		lat, lng, err := o.Coordinate()
		if err != nil {
			e.logger.WarnContext(ctx, "skipping office with invalid coordinates",
				slog.String("office_id", o.ID),
				slog.Any("error", err),
			)
			continue
		}

		distance := geo.HaversineDistance(point.Latitude, point.Longitude, lat, lng)
		if distance <= e.radiusMeters {
			e.logger.DebugContext(ctx, "inside office geofence",
				slog.String("office_id", o.ID),
				slog.Float64("distance_meters", distance),
			)
			return true, nil
		}
	}

	return false, nil
}
