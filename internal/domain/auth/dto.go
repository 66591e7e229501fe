package auth

import (
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	api.Envelope
	Token    string   `json:"token"`
	Employee Employee `json:"employee"`
}

type Employee struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Team string `json:"team,omitempty"`
}
