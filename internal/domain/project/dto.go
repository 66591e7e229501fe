package project

import (
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

type ProjectListResponse struct {
	api.Envelope
	Projects []Project `json:"project"`
}

type TicketListResponse struct {
	api.Envelope
	Tickets []Ticket `json:"ticket"`
}

type TicketStatusUpdate struct {
	Status string `json:"status"`
}

func (r *TicketStatusUpdate) Validate() error {
	var errs validator.ValidationErrors

	allowed := []string{TicketOpen, TicketInProgress, TicketClosed}
	if !validator.IsInSlice(r.Status, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Open, In Progress, Closed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
