package attendance

import (
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type PunchInRequest struct {
	Employee       string `json:"employee"`
	AttendanceDate string `json:"attendanceDate"`
	PunchInTime    string `json:"punchInTime"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceDate",
			Message: "attendanceDate must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.PunchInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "punchInTime",
			Message: "punchInTime must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	Employee       string `json:"employee"`
	AttendanceDate string `json:"attendanceDate"`
	PunchOutTime   string `json:"punchOutTime"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceDate",
			Message: "attendanceDate must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.PunchOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "punchOutTime",
			Message: "punchOutTime must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListResponse struct {
	api.Envelope
	Attendance []Record `json:"attendance"`
}
