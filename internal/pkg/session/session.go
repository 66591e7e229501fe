package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Session is the only state this client persists: the bearer token for
// the EMS backend plus the identity it was issued to. Passed explicitly
// to the API client rather than read from ambient globals.
type Session struct {
	Token        string    `json:"token"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Team         string    `json:"team,omitempty"`
	SavedAt      time.Time `json:"saved_at"`
}

// ExpiresAt reads the exp claim from the bearer token. The token is
// parsed without signature verification: the client holds no signing
// key, and the backend re-verifies on every request anyway.
func (s *Session) ExpiresAt() (time.Time, error) {
	tok, err := jwt.Parse([]byte(s.Token), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	return tok.Expiration(), nil
}

// Valid reports whether the token exists and has not expired. A token
// without a readable exp claim is treated as valid and left to the
// backend to reject.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	exp, err := s.ExpiresAt()
	if err != nil || exp.IsZero() {
		return s.Token != "" && err == nil
	}
	return now.Before(exp)
}

var ErrNoSession = errors.New("no saved session, login first")

// Store persists the session as a JSON file readable only by the owner.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

func (st *Store) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	s.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
