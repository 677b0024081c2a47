package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"hospital-management/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items map[string]Appointment
}

func newTestRepo() *testRepo { return &testRepo{items: map[string]Appointment{}} }

func (r *testRepo) Create(_ context.Context, a Appointment) error {
	r.items[a.ID] = a
	return nil
}

func (r *testRepo) List(_ context.Context, patientID string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.items {
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.After(out[j].AppointmentDate) })
	return out, nil
}

func (r *testRepo) UpdateStatus(_ context.Context, id string, status Status) (Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	a.Status = status
	r.items[id] = a
	return a, nil
}

func TestService_Schedule_DefaultsToScheduled(t *testing.T) {
	svc := NewService(newTestRepo())
	a, err := svc.Schedule(context.Background(), ScheduleInput{
		PatientID:       "p-1",
		AppointmentDate: time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, a.Status)
	assert.NotEmpty(t, a.ID)
}

func TestService_Schedule_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Schedule(ctx, ScheduleInput{PatientID: "p-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Schedule(ctx, ScheduleInput{PatientID: "p-1", AppointmentDate: time.Now(), Status: "postponed"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Schedule(ctx, ScheduleInput{PatientID: "p-1", AppointmentDate: time.Now()})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, a.ID, StatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, StatusNoShow, got.Status)

	_, err = svc.UpdateStatus(ctx, "missing", StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func doJSON(t *testing.T, h http.Handler, method, path, role string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if role != "" {
		req.Header.Set("X-Debug-User-ID", role+"-1")
		req.Header.Set("X-Debug-Role", role)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Appointments(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	RegisterRoutes(r, NewService(newTestRepo()))

	rec := doJSON(t, r, http.MethodPost, "/appointments", "doctor", map[string]any{
		"patient_id":       "p-1",
		"appointment_date": "2025-04-02T10:30",
		"reason":           "control",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "doctor-1", created.DoctorID)
	assert.Equal(t, StatusScheduled, created.Status)

	rec = doJSON(t, r, http.MethodPatch, "/appointments/"+created.ID, "reception", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPatch, "/appointments/"+created.ID, "reception", map[string]any{"status": "later"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPatch, "/appointments/nope", "reception", map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/appointments?patientId=p-1", "reception", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, StatusCompleted, list[0].Status)

	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, "/appointments", "nurse", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodPost, "/appointments", "reception",
		map[string]any{"patient_id": "p-1", "appointment_date": "mañana"}).Code)
}
