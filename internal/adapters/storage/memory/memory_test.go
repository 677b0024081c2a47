package memory

import (
	"context"
	"testing"
	"time"

	"hospital-management/internal/domain/appointments"
	"hospital-management/internal/domain/consultations"
	"hospital-management/internal/domain/inventory"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/prescriptions"
	"hospital-management/internal/domain/queue"
	"hospital-management/internal/domain/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func TestPatientRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepo()

	require.NoError(t, repo.Create(ctx, patients.Patient{ID: "a", PatientNumber: "P1", Phone: "555", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, patients.Patient{ID: "b", PatientNumber: "P2", Phone: "777", CreatedAt: t0.Add(time.Hour)}))
	assert.Error(t, repo.Create(ctx, patients.Patient{ID: "a"}))
	assert.Error(t, repo.Create(ctx, patients.Patient{}))

	all, err := repo.List(ctx, patients.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "newest first")

	// phone gana sobre el número de paciente
	got, err := repo.List(ctx, patients.ListFilter{Phone: "555", PatientNumber: "P2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, patients.ErrNotFound)
}

func TestVitalsRepo_OrderLimitAndNoAnomalies(t *testing.T) {
	ctx := context.Background()
	repo := NewVitalsRepo()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, vitals.Record{
			ID:         string(rune('a' + i)),
			PatientID:  "p-1",
			RecordedAt: t0.Add(time.Duration(i) * time.Minute),
			Anomalies:  []vitals.AnomalyLabel{vitals.LabelSystolic},
		}))
	}
	require.NoError(t, repo.Create(ctx, vitals.Record{ID: "x", PatientID: "p-2", RecordedAt: t0}))

	got, err := repo.List(ctx, vitals.ListFilter{PatientID: "p-1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Nil(t, got[0].Anomalies)
}

func TestAppointmentRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepo()

	require.NoError(t, repo.Create(ctx, appointments.Appointment{ID: "1", PatientID: "p", AppointmentDate: t0, Status: appointments.StatusScheduled}))
	require.NoError(t, repo.Create(ctx, appointments.Appointment{ID: "2", PatientID: "p", AppointmentDate: t0.AddDate(0, 0, 1), Status: appointments.StatusScheduled}))

	got, err := repo.List(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "2", got[0].ID)

	a, err := repo.UpdateStatus(ctx, "1", appointments.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, appointments.StatusCancelled, a.Status)

	_, err = repo.UpdateStatus(ctx, "9", appointments.StatusCancelled)
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}

func TestConsultationRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewConsultationRepo()

	require.NoError(t, repo.Create(ctx, consultations.Consultation{ID: "1", PatientID: "p", ConsultationDate: t0}))
	require.NoError(t, repo.Create(ctx, consultations.Consultation{ID: "2", PatientID: "q", ConsultationDate: t0}))

	got, err := repo.List(ctx, "p")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestPrescriptionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewPrescriptionRepo()

	require.NoError(t, repo.Create(ctx, prescriptions.Prescription{ID: "1", PatientID: "p", Status: prescriptions.StatusPending, CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, prescriptions.Prescription{ID: "2", PatientID: "p", Status: prescriptions.StatusPending, CreatedAt: t0.Add(time.Minute)}))

	p, err := repo.UpdateStatus(ctx, "1", prescriptions.StatusDispensed, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Hour), p.UpdatedAt)

	pending, err := repo.List(ctx, prescriptions.ListFilter{Status: prescriptions.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].ID)
}

func TestInventoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepo()

	require.NoError(t, repo.Create(ctx, inventory.Item{ID: "1", MedicationName: "A", LastUpdated: t0}))
	require.NoError(t, repo.Create(ctx, inventory.Item{ID: "2", MedicationName: "B", LastUpdated: t0.Add(time.Minute)}))

	it, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	it.Quantity = 3
	it.LastUpdated = t0.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, it))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", all[0].ID, "last_updated desc")

	assert.ErrorIs(t, repo.Update(ctx, inventory.Item{ID: "9"}), inventory.ErrNotFound)
	_, err = repo.GetByID(ctx, "9")
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestQueueRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepo()

	require.NoError(t, repo.Create(ctx, queue.Entry{ID: "2", QueueType: "c", Status: queue.StatusWaiting, CreatedAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, queue.Entry{ID: "1", QueueType: "c", Status: queue.StatusWaiting, CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, queue.Entry{ID: "3", QueueType: "p", Status: queue.StatusWaiting, CreatedAt: t0}))

	got, err := repo.List(ctx, queue.ListFilter{QueueType: "c", Status: queue.StatusWaiting})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)

	_, err = repo.UpdateStatus(ctx, "x", queue.StatusCompleted, t0)
	assert.ErrorIs(t, err, queue.ErrNotFound)
}
