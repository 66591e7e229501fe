package office

import (
	"fmt"
	"strconv"

	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

// Location is a registered office. The backend stores coordinates as
// numeric strings; Coordinate parses them on demand so one malformed
// row never poisons the rest of the registry.
type Location struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (l Location) Coordinate() (lat, lng float64, err error) {
	lat, err = strconv.ParseFloat(l.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("office %s has invalid latitude %q: %w", l.ID, l.Latitude, err)
	}
	lng, err = strconv.ParseFloat(l.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("office %s has invalid longitude %q: %w", l.ID, l.Longitude, err)
	}
	if !validator.IsValidLatitude(lat) || !validator.IsValidLongitude(lng) {
		return 0, 0, fmt.Errorf("office %s coordinate (%s, %s) is out of range", l.ID, l.Latitude, l.Longitude)
	}
	return lat, lng, nil
}
