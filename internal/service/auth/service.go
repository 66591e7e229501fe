package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/auth"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/session"
)

type ServiceImpl struct {
	client *api.Client
	store  *session.Store
	logger *slog.Logger
}

func NewService(client *api.Client, store *session.Store, logger *slog.Logger) auth.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceImpl{client: client, store: store, logger: logger}
}

// Login implements auth.Service. On success the session is persisted so
// later invocations can reuse the bearer token.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	var resp auth.LoginResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("login failed: %w", err)
	}

	sess := &session.Session{
		Token:        resp.Token,
		EmployeeID:   resp.Employee.ID,
		EmployeeName: resp.Employee.Name,
		Team:         resp.Employee.Team,
	}
	if err := s.store.Save(sess); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.InfoContext(ctx, "logged in", slog.String("employee_id", resp.Employee.ID))
	return resp, nil
}

// Logout implements auth.Service. Purely local: the backend session is
// stateless, so dropping the cached token is enough.
func (s *ServiceImpl) Logout(ctx context.Context) error {
	return s.store.Clear()
}
