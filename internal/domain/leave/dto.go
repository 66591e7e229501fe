package leave

import (
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type ApplyRequest struct {
	Employee  string `json:"employee"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompOffRequest struct {
	Employee   string `json:"employee"`
	WorkedDate string `json:"workedDate"`
	Reason     string `json:"reason"`
}

func (r *CompOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if _, ok := validator.IsValidDate(r.WorkedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "workedDate",
			Message: "workedDate must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListResponse struct {
	api.Envelope
	Leaves []Request `json:"leave"`
}

type CompOffListResponse struct {
	api.Envelope
	CompOffs []CompOff `json:"compOff"`
}
