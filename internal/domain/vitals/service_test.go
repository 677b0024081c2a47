package vitals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items     []Record
	createErr error
}

func (r *testRepo) Create(_ context.Context, rec Record) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Record, error) {
	out := make([]Record, 0)
	for _, rec := range r.items {
		if f.PatientID != "" && rec.PatientID != f.PatientID {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type countingObserver struct {
	readings int
	labels   []AnomalyLabel
}

func (o *countingObserver) ObserveReading(labels []AnomalyLabel) {
	o.readings++
	o.labels = append(o.labels, labels...)
}

func newTestService(repo Repository, start time.Time, opts ...Option) *Service {
	svc := NewService(repo, opts...)
	clock := start
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc
}

// -------------------------
// Service
// -------------------------

func TestService_Record_ClassifiesAndPersists(t *testing.T) {
	repo := &testRepo{}
	obs := &countingObserver{}
	svc := newTestService(repo, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), WithObserver(obs))

	rec, err := svc.Record(context.Background(), RecordInput{
		PatientID:       " p-1 ",
		NurseID:         "nurse-1",
		Reading:         Reading{SystolicPressure: 145, DiastolicPressure: 95, HeartRate: 105, Temperature: 38.5, OxygenSaturation: 92},
		RespiratoryRate: 18,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "p-1", rec.PatientID)
	assert.Equal(t, []AnomalyLabel{LabelSystolic, LabelDiastolic, LabelHeartRate, LabelOxygenSaturation}, rec.Anomalies)
	require.Len(t, repo.items, 1)
	assert.Nil(t, repo.items[0].Anomalies, "anomalies are not persisted")

	assert.Equal(t, 1, obs.readings)
	assert.Len(t, obs.labels, 4)
}

func TestService_Record_RequiresPatient(t *testing.T) {
	svc := NewService(&testRepo{})
	_, err := svc.Record(context.Background(), RecordInput{Reading: normalReading()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Record_RepoErrorSkipsObserver(t *testing.T) {
	obs := &countingObserver{}
	svc := NewService(&testRepo{createErr: errors.New("db down")}, WithObserver(obs))

	_, err := svc.Record(context.Background(), RecordInput{PatientID: "p-1", Reading: normalReading()})
	require.Error(t, err)
	assert.Zero(t, obs.readings)
}

func TestService_WithClassifier_UsesCustomTable(t *testing.T) {
	c := NewClassifier(DefaultThresholds().With(KindHeartRate, Between(50, 110)))
	svc := NewService(&testRepo{}, WithClassifier(c))

	r := normalReading()
	r.HeartRate = 105
	assert.Empty(t, svc.Classify(r))
}

func TestService_Monitoring_LatestPerPatient(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	bad := Reading{SystolicPressure: 150, DiastolicPressure: 80, HeartRate: 72, Temperature: 37, OxygenSaturation: 98}

	_, err := svc.Record(ctx, RecordInput{PatientID: "p-1", Reading: bad})
	require.NoError(t, err)
	_, err = svc.Record(ctx, RecordInput{PatientID: "p-2", Reading: bad})
	require.NoError(t, err)
	// la más reciente de p-1 es normal
	_, err = svc.Record(ctx, RecordInput{PatientID: "p-1", Reading: normalReading()})
	require.NoError(t, err)

	board, err := svc.Monitoring(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)

	byPatient := map[string]MonitoredPatient{}
	for _, m := range board {
		byPatient[m.PatientID] = m
	}
	assert.Equal(t, ConditionStable, byPatient["p-1"].Condition)
	assert.Zero(t, byPatient["p-1"].AlertCount)
	assert.Equal(t, ConditionCritical, byPatient["p-2"].Condition)
	assert.Equal(t, 1, byPatient["p-2"].AlertCount)
}

// -------------------------
// HTTP
// -------------------------

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	RegisterRoutes(r, svc)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, role string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Debug-User-ID", role+"-1")
		req.Header.Set("X-Debug-Role", role)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_RecordVitals(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{}))

	rec := doJSON(t, h, http.MethodPost, "/vitals", "nurse", map[string]any{
		"patient_id":        "p-1",
		"systolic":          85,
		"diastolic":         55,
		"heart_rate":        50,
		"temperature":       39.0,
		"oxygen_saturation": 90,
		"respiratory_rate":  22,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp VitalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "nurse-1", resp.NurseID)
	assert.Len(t, resp.Anomalies, 5)
}

func TestHTTP_RecordVitals_Validation(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{}))

	cases := []struct {
		name string
		body any
	}{
		{"non numeric", `{"patient_id":"p-1","systolic":"abc","diastolic":80,"heart_rate":70,"temperature":37,"oxygen_saturation":98,"respiratory_rate":16}`},
		{"missing spo2", map[string]any{"patient_id": "p-1", "systolic": 120, "diastolic": 80, "heart_rate": 70, "temperature": 37, "respiratory_rate": 16}},
		{"missing patient", map[string]any{"systolic": 120, "diastolic": 80, "heart_rate": 70, "temperature": 37, "oxygen_saturation": 98, "respiratory_rate": 16}},
		{"broken json", `{"patient_id":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/vitals", "nurse", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHTTP_RecordVitals_RoleGate(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{}))

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, h, http.MethodPost, "/vitals", "", map[string]any{}).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(t, h, http.MethodPost, "/vitals", "doctor", map[string]any{}).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/vitals", "doctor", nil).Code)
}

func TestHTTP_RecordVitals_StorageFailure(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{createErr: errors.New("db down")}))

	rec := doJSON(t, h, http.MethodPost, "/vitals", "nurse", map[string]any{
		"patient_id": "p-1", "systolic": 120, "diastolic": 80, "heart_rate": 70,
		"temperature": 37, "oxygen_saturation": 98, "respiratory_rate": 16,
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to record vitals"}`, rec.Body.String())
}

func TestHTTP_RecordVitals_WrappedInvalidInputIs400(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{createErr: fmt.Errorf("vitals p-1: %w", ErrInvalidInput)}))

	rec := doJSON(t, h, http.MethodPost, "/vitals", "nurse", map[string]any{
		"patient_id": "p-1", "systolic": 120, "diastolic": 80, "heart_rate": 70,
		"temperature": 37, "oxygen_saturation": 98, "respiratory_rate": 16,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestHTTP_Classify(t *testing.T) {
	h := newTestRouter(NewService(&testRepo{}))

	rec := doJSON(t, h, http.MethodPost, "/vitals/classify", "doctor", map[string]any{
		"systolic": 120, "diastolic": 80, "heart_rate": 72, "temperature": 37.2, "oxygen_saturation": 98,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"anomalies":[]}`, rec.Body.String())
}

func TestHTTP_ListAndMonitoring(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	h := newTestRouter(svc)

	_, err := svc.Record(context.Background(), RecordInput{PatientID: "p-1", Reading: normalReading()})
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), RecordInput{PatientID: "p-2", Reading: Reading{SystolicPressure: 150, DiastolicPressure: 80, HeartRate: 72, Temperature: 37, OxygenSaturation: 90}})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodGet, "/vitals?patientId=p-2", "nurse", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []VitalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, []AnomalyLabel{LabelSystolic, LabelOxygenSaturation}, list[0].Anomalies)

	rec = doJSON(t, h, http.MethodGet, "/vitals/monitoring", "nurse", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board []monitoredPatientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	assert.Len(t, board, 2)
}
