package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"hospital-management/internal/domain/prescriptions"
)

type prescriptionRepo struct {
	mu   sync.RWMutex
	byID map[string]prescriptions.Prescription
}

func NewPrescriptionRepo() prescriptions.Repository {
	return &prescriptionRepo{
		byID: make(map[string]prescriptions.Prescription),
	}
}

func (r *prescriptionRepo) Create(ctx context.Context, p prescriptions.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("prescription id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *prescriptionRepo) List(ctx context.Context, filter prescriptions.ListFilter) ([]prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0)
	for _, p := range r.byID {
		if filter.PatientID != "" && p.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *prescriptionRepo) UpdateStatus(ctx context.Context, id string, status prescriptions.Status, at time.Time) (prescriptions.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return prescriptions.Prescription{}, prescriptions.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	r.byID[id] = p
	return p, nil
}
