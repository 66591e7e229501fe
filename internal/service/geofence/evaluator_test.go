package geofence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/office"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/location"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/session"
	officeService "github.com/mdarwaz0786/ems-attendance-client/internal/service/office"
)

const testOfficeLat = 28.6190774
const testOfficeLng = 77.0345819

// newRegistryBackend serves the office registry behind bearer-token
// auth, the way the real backend does.
func newRegistryBackend(t *testing.T, offices []office.Location) office.Service {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	_, token, err := ja.Encode(map[string]interface{}{
		"employee_id": "emp1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Get("/officeLocation/all-officeLocation", func(w http.ResponseWriter, req *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":        true,
				"officeLocation": offices,
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := &session.Session{Token: token, EmployeeID: "emp1"}
	client := api.NewClient(srv.URL, 5*time.Second, sess, nil)
	return officeService.NewService(client, nil)
}

func singleOffice() []office.Location {
	return []office.Location{
		{ID: "off1", Name: "Head Office", Latitude: "28.6190774", Longitude: "77.0345819"},
	}
}

func TestWithinAnyOffice_AtOfficeCoordinate(t *testing.T) {
	e := NewEvaluator(newRegistryBackend(t, singleOffice()), 20, nil)

	in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
		Latitude:  testOfficeLat,
		Longitude: testOfficeLng,
	})
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWithinAnyOffice_Boundary(t *testing.T) {
	cases := []struct {
		name      string
		latOffset float64
		want      bool
	}{
		// 0.000225 deg of latitude is about 25 m.
		{"25 meters north is outside", 0.000225, false},
		// 0.00009 deg is about 10 m.
		{"10 meters north is inside", 0.00009, true},
		{"exactly at office", 0, true},
	}

	e := NewEvaluator(newRegistryBackend(t, singleOffice()), 20, nil)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
				Latitude:  testOfficeLat + c.latOffset,
				Longitude: testOfficeLng,
			})
			require.NoError(t, err)
			assert.Equal(t, c.want, in)
		})
	}
}

func TestWithinAnyOffice_SecondOfficeMatches(t *testing.T) {
	offices := []office.Location{
		{ID: "far", Latitude: "12.9716", Longitude: "77.5946"},
		{ID: "near", Latitude: "28.6190774", Longitude: "77.0345819"},
	}
	e := NewEvaluator(newRegistryBackend(t, offices), 20, nil)

	in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
		Latitude:  testOfficeLat,
		Longitude: testOfficeLng,
	})
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWithinAnyOffice_SkipsUnparseableOffices(t *testing.T) {
	offices := []office.Location{
		{ID: "bad", Latitude: "not-a-number", Longitude: "77.0345819"},
		{ID: "out-of-range", Latitude: "123.4", Longitude: "77.0345819"},
		{ID: "good", Latitude: "28.6190774", Longitude: "77.0345819"},
	}
	e := NewEvaluator(newRegistryBackend(t, offices), 20, nil)

	in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
		Latitude:  testOfficeLat,
		Longitude: testOfficeLng,
	})
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWithinAnyOffice_AllOfficesUnparseable(t *testing.T) {
	offices := []office.Location{
		{ID: "bad1", Latitude: "x", Longitude: "y"},
	}
	e := NewEvaluator(newRegistryBackend(t, offices), 20, nil)

	in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
		Latitude:  testOfficeLat,
		Longitude: testOfficeLng,
	})
	require.NoError(t, err)
	assert.False(t, in)
}

func TestWithinAnyOffice_FailsClosedOnRegistryError(t *testing.T) {
	// Backend is down: the client points at a closed server.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := api.NewClient(srv.URL, time.Second, &session.Session{Token: "t"}, nil)
	e := NewEvaluator(officeService.NewService(client, nil), 20, nil)

	points := []location.Coordinate{
		{Latitude: testOfficeLat, Longitude: testOfficeLng},
		{Latitude: 0, Longitude: 0},
		{Latitude: -45.5, Longitude: 120.25},
	}
	for _, p := range points {
		in, err := e.WithinAnyOffice(context.Background(), p)
		assert.False(t, in, "registry failure must never pass the geofence")
		assert.ErrorIs(t, err, office.ErrRegistryFetch)
	}
}

func TestWithinAnyOffice_RejectedTokenFailsClosed(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Get("/officeLocation/all-officeLocation", func(w http.ResponseWriter, req *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second, &session.Session{Token: "garbage"}, nil)
	e := NewEvaluator(officeService.NewService(client, nil), 20, nil)

	in, err := e.WithinAnyOffice(context.Background(), location.Coordinate{
		Latitude:  testOfficeLat,
		Longitude: testOfficeLng,
	})
	assert.False(t, in)
	assert.ErrorIs(t, err, office.ErrRegistryFetch)
}
