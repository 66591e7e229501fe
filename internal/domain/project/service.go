package project

import "context"

type Service interface {
	Projects(ctx context.Context, employeeID string) ([]Project, error)
	Tickets(ctx context.Context, employeeID string) ([]Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, req TicketStatusUpdate) error
}
