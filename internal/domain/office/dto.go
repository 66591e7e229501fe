package office

import (
	"strconv"

	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type ListResponse struct {
	api.Envelope
	OfficeLocation []Location `json:"officeLocation"`
}

type UpsertRequest struct {
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if lat, err := strconv.ParseFloat(r.Latitude, 64); err != nil || !validator.IsValidLatitude(lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be a number between -90 and 90",
		})
	}

	if lng, err := strconv.ParseFloat(r.Longitude, 64); err != nil || !validator.IsValidLongitude(lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be a number between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
