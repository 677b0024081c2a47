package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-management/internal/domain/appointments"
)

type appointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) List(ctx context.Context, patientID string) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return a, nil
}
