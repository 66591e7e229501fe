package location

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ReturnsConfiguredCoordinate(t *testing.T) {
	p := NewStatic(28.6190774, 77.0345819)

	perm, err := p.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, perm)

	got, err := p.Current(context.Background(), Options{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: 28.6190774, Longitude: 77.0345819}, got)
}

func TestStatic_CancelledContext(t *testing.T) {
	p := NewStatic(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Current(ctx, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

// writeHelper writes an executable shell script acting as the location
// helper binary.
func writeHelper(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell helper scripts are not portable to windows")
	}
	path := filepath.Join(t.TempDir(), "location-helper")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestCommand_ParsesFix(t *testing.T) {
	ts := time.Now().UTC().Format(time.RFC3339)
	helper := writeHelper(t, fmt.Sprintf(
		`printf '{"latitude":28.6190774,"longitude":77.0345819,"timestamp":"%s"}'`, ts))

	p := NewCommand(helper)
	got, err := p.Current(context.Background(), Options{Timeout: 5 * time.Second, MaxAge: 10 * time.Second})
	require.NoError(t, err)
	assert.InDelta(t, 28.6190774, got.Latitude, 1e-9)
	assert.InDelta(t, 77.0345819, got.Longitude, 1e-9)
}

func TestCommand_RejectsStaleFix(t *testing.T) {
	old := time.Now().UTC().Add(-time.Minute).Format(time.RFC3339)
	helper := writeHelper(t, fmt.Sprintf(
		`printf '{"latitude":1,"longitude":2,"timestamp":"%s"}'`, old))

	p := NewCommand(helper)
	_, err := p.Current(context.Background(), Options{Timeout: 5 * time.Second, MaxAge: 10 * time.Second})
	assert.ErrorIs(t, err, ErrStaleFix)
}

func TestCommand_TimeoutMapsToUnavailable(t *testing.T) {
	helper := writeHelper(t, "sleep 5")

	p := NewCommand(helper)
	start := time.Now()
	_, err := p.Current(context.Background(), Options{Timeout: 200 * time.Millisecond})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCommand_PermissionExitCodes(t *testing.T) {
	cases := []struct {
		name string
		code int
		want Permission
	}{
		{"granted", 0, PermissionGranted},
		{"denied", 3, PermissionDenied},
		{"denied forever", 4, PermissionDeniedForever},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			helper := writeHelper(t, fmt.Sprintf("exit %d", c.code))
			p := NewCommand(helper)
			perm, err := p.RequestPermission(context.Background())
			require.NoError(t, err)
			assert.Equal(t, c.want, perm)
		})
	}
}

func TestCommand_DeniedFixMapsToPermissionError(t *testing.T) {
	helper := writeHelper(t, "exit 3")
	p := NewCommand(helper)
	_, err := p.Current(context.Background(), Options{Timeout: time.Second})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCommand_MalformedOutput(t *testing.T) {
	helper := writeHelper(t, `printf 'not-json'`)
	p := NewCommand(helper)
	_, err := p.Current(context.Background(), Options{Timeout: time.Second})
	assert.ErrorIs(t, err, ErrUnavailable)
}
