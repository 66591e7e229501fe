package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Helper exit codes, matching the termux-location style bridge the
// mobile build ships.
const (
	exitPermissionDenied  = 3
	exitPermissionForever = 4
)

// Command acquires fixes from an external helper binary that prints a
// JSON fix on stdout. The helper owns the actual platform permission
// dialog; this provider only interprets its exit codes.
type Command struct {
	// Path is the helper binary.
	Path string
	now  func() time.Time
}

type commandFix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func NewCommand(path string) *Command {
	return &Command{Path: path, now: time.Now}
}

func (c *Command) RequestPermission(ctx context.Context) (Permission, error) {
	out := exec.CommandContext(ctx, c.Path, "permission")
	if err := out.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitPermissionDenied:
				return PermissionDenied, nil
			case exitPermissionForever:
				return PermissionDeniedForever, nil
			}
		}
		return PermissionDenied, fmt.Errorf("location helper permission check failed: %w", err)
	}
	return PermissionGranted, nil
}

func (c *Command) Current(ctx context.Context, opts Options) (Coordinate, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	args := []string{"fix"}
	if opts.HighAccuracy {
		args = append(args, "--high-accuracy")
	}

	out, err := exec.CommandContext(ctx, c.Path, args...).Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Coordinate{}, fmt.Errorf("%w: no fix within %s", ErrUnavailable, opts.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitPermissionDenied, exitPermissionForever:
				return Coordinate{}, ErrPermissionDenied
			}
		}
		return Coordinate{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var fix commandFix
	if err := json.Unmarshal(out, &fix); err != nil {
		return Coordinate{}, fmt.Errorf("%w: malformed fix: %v", ErrUnavailable, err)
	}

	if opts.MaxAge > 0 && !fix.Timestamp.IsZero() && c.now().Sub(fix.Timestamp) > opts.MaxAge {
		return Coordinate{}, ErrStaleFix
	}

	return Coordinate{Latitude: fix.Latitude, Longitude: fix.Longitude}, nil
}
