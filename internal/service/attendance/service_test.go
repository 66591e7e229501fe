package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/attendance"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/session"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/validator"
)

func newService(t *testing.T, handler http.Handler) attendance.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := &session.Session{Token: "test-token", EmployeeID: "emp1"}
	return NewService(api.NewClient(srv.URL, 5*time.Second, sess, nil), nil)
}

func TestToday_ReturnsFirstRecord(t *testing.T) {
	in := "09:12"
	r := chi.NewRouter()
	r.Get("/attendance/all-attendance", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2025-08-18", req.URL.Query().Get("date"))
		assert.Equal(t, "emp1", req.URL.Query().Get("employeeId"))
		json.NewEncoder(w).Encode(attendance.ListResponse{
			Envelope: api.Envelope{Success: true},
			Attendance: []attendance.Record{
				{ID: "att1", EmployeeID: "emp1", AttendanceDate: "2025-08-18", PunchInTime: &in},
			},
		})
	})
	svc := newService(t, r)

	rec, err := svc.Today(context.Background(), "emp1", "2025-08-18")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "att1", rec.ID)
	assert.Equal(t, attendance.StatePunchedIn, attendance.StateOf(rec))
}

func TestToday_NoRecordYieldsNil(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/attendance/all-attendance", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(attendance.ListResponse{
			Envelope: api.Envelope{Success: true},
		})
	})
	svc := newService(t, r)

	rec, err := svc.Today(context.Background(), "emp1", "2025-08-18")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, attendance.StateNoRecord, attendance.StateOf(rec))
}

func TestPunchIn_RejectsInvalidRequestWithoutCalling(t *testing.T) {
	called := false
	r := chi.NewRouter()
	r.Post("/attendance/create-attendance", func(w http.ResponseWriter, req *http.Request) {
		called = true
	})
	svc := newService(t, r)

	err := svc.PunchIn(context.Background(), attendance.PunchInRequest{
		Employee:       "",
		AttendanceDate: "18-08-2025",
		PunchInTime:    "9:00",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.False(t, called, "invalid request must not reach the backend")
}

func TestPunchOut_SendsPayload(t *testing.T) {
	var got attendance.PunchOutRequest
	r := chi.NewRouter()
	r.Put("/attendance/update-attendance", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})
	svc := newService(t, r)

	err := svc.PunchOut(context.Background(), attendance.PunchOutRequest{
		Employee:       "emp1",
		AttendanceDate: "2025-08-18",
		PunchOutTime:   "18:05",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp1", got.Employee)
	assert.Equal(t, "18:05", got.PunchOutTime)
}

func TestStateOf_Transitions(t *testing.T) {
	in, out, empty := "09:00", "18:00", ""

	cases := []struct {
		name string
		rec  *attendance.Record
		want attendance.State
	}{
		{"nil record", nil, attendance.StateNoRecord},
		{"empty punch-in", &attendance.Record{PunchInTime: &empty}, attendance.StateNoRecord},
		{"punched in", &attendance.Record{PunchInTime: &in}, attendance.StatePunchedIn},
		{"punched in and out", &attendance.Record{PunchInTime: &in, PunchOutTime: &out}, attendance.StatePunchedInAndOut},
		{"punch-out without punch-in reads as no record", &attendance.Record{PunchOutTime: &out}, attendance.StateNoRecord},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, attendance.StateOf(c.rec))
		})
	}
}
