package project

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/project"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
)

type ServiceImpl struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) project.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, logger: logger}
}

// Projects implements project.Service.
func (s *ServiceImpl) Projects(ctx context.Context, employeeID string) ([]project.Project, error) {
	query := url.Values{"employeeId": {employeeID}}
	var resp project.ProjectListResponse
	if err := s.client.Get(ctx, "/project/all-project", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return resp.Projects, nil
}

// Tickets implements project.Service.
func (s *ServiceImpl) Tickets(ctx context.Context, employeeID string) ([]project.Ticket, error) {
	query := url.Values{"employeeId": {employeeID}}
	var resp project.TicketListResponse
	if err := s.client.Get(ctx, "/ticket/all-ticket", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	return resp.Tickets, nil
}

// UpdateTicketStatus implements project.Service.
func (s *ServiceImpl) UpdateTicketStatus(ctx context.Context, ticketID string, req project.TicketStatusUpdate) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.client.Put(ctx, "/ticket/update-ticket/"+ticketID, req, nil); err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", ticketID, err)
	}
	s.logger.InfoContext(ctx, "ticket status updated",
		slog.String("ticket_id", ticketID),
		slog.String("status", req.Status),
	)
	return nil
}
