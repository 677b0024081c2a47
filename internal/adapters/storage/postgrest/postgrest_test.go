package postgrest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management/internal/domain/inventory"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/queue"
	"hospital-management/internal/domain/vitals"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	method string
	path   string
	query  map[string]string
	prefer string
	body   []byte
}

func newTestClient(t *testing.T, status int, respBody string) (*Client, *capture) {
	t.Helper()
	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		got.method = r.Method
		got.path = r.URL.Path
		got.prefer = r.Header.Get("Prefer")
		got.query = map[string]string{}
		for k := range r.URL.Query() {
			got.query[k] = r.URL.Query().Get(k)
		}
		got.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key", Timeout: time.Second})
	require.NoError(t, err)
	return c, got
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "https://x.supabase.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPatientsRepo_CreateSendsRow(t *testing.T) {
	c, got := newTestClient(t, http.StatusCreated, "")
	repo := NewPatientsRepo(c)

	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), patients.Patient{
		ID: "id-1", PatientNumber: "P1", FirstName: "Ana", LastName: "Pérez", DateOfBirth: &dob,
	}))

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/rest/v1/patients", got.path)
	assert.Equal(t, "return=minimal", got.prefer)

	var row map[string]any
	require.NoError(t, json.Unmarshal(got.body, &row))
	assert.Equal(t, "P1", row["patient_id"])
	assert.Equal(t, "1990-01-02", row["date_of_birth"])
}

func TestPatientsRepo_ListByPhone(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`[{"id":"id-1","patient_id":"P1","first_name":"Ana","last_name":"Pérez","date_of_birth":"1990-01-02","phone":"555","created_at":"2025-03-01T08:00:00+00:00"}]`)
	repo := NewPatientsRepo(c)

	items, err := repo.List(context.Background(), patients.ListFilter{Phone: "555", PatientNumber: "P9"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DateOfBirth)
	assert.Equal(t, 1990, items[0].DateOfBirth.Year())

	assert.Equal(t, "eq.555", got.query["phone"])
	assert.NotContains(t, got.query, "patient_id")
	assert.Equal(t, "created_at.desc", got.query["order"])
	assert.Equal(t, "*", got.query["select"])
}

func TestPatientsRepo_GetByID_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `[]`)
	_, err := NewPatientsRepo(c).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, patients.ErrNotFound)
}

func TestVitalsRepo_ListLimit(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`[{"id":"v-1","patient_id":"p-1","blood_pressure_systolic":145,"blood_pressure_diastolic":95,"heart_rate":105,"temperature":38.5,"oxygen_saturation":92,"respiratory_rate":18,"weight":null,"recorded_at":"2025-03-01T08:00:00Z"}]`)

	items, err := NewVitalsRepo(c).List(context.Background(), vitals.ListFilter{PatientID: "p-1", Limit: 20})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 92, items[0].Reading.OxygenSaturation)
	assert.Nil(t, items[0].Weight)
	assert.Equal(t, "20", got.query["limit"])
	assert.Equal(t, "recorded_at.desc", got.query["order"])
}

func TestInventoryRepo_DecimalPrice(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK,
		`[{"id":"i-1","medication_name":"Insulina","quantity":4,"reorder_level":10,"price":18.25,"last_updated":"2025-03-01T08:00:00Z"}]`)

	it, err := NewInventoryRepo(c).GetByID(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("18.25").Equal(it.Price))
	assert.True(t, it.IsLowStock())
}

func TestInventoryRepo_UpdateNotFound(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`)

	err := NewInventoryRepo(c).Update(context.Background(), inventory.Item{ID: "i-9"})
	assert.ErrorIs(t, err, inventory.ErrNotFound)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "return=representation", got.prefer)
	assert.Equal(t, "eq.i-9", got.query["id"])
}

func TestQueueRepo_UpdateStatus(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`[{"id":"q-1","patient_id":"p-1","queue_type":"consultation","status":"completed","position":1,"created_at":"2025-03-01T08:00:00Z","updated_at":"2025-03-01T09:00:00Z"}]`)

	e, err := NewQueueRepo(c).UpdateStatus(context.Background(), "q-1", queue.StatusCompleted, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, queue.StatusCompleted, e.Status)

	var patch map[string]any
	require.NoError(t, json.Unmarshal(got.body, &patch))
	assert.Equal(t, "completed", patch["status"])
}

func TestUpstreamErrorPropagates(t *testing.T) {
	c, _ := newTestClient(t, http.StatusInternalServerError, `{"message":"boom"}`)
	_, err := NewQueueRepo(c).List(context.Background(), queue.ListFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgrest select queue")
}
