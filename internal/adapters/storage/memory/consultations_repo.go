package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-management/internal/domain/consultations"
)

type consultationRepo struct {
	mu    sync.RWMutex
	items []consultations.Consultation
}

func NewConsultationRepo() consultations.Repository {
	return &consultationRepo{}
}

func (r *consultationRepo) Create(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("consultation id required")
	}
	r.items = append(r.items, c)
	return nil
}

func (r *consultationRepo) List(ctx context.Context, patientID string) ([]consultations.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]consultations.Consultation, 0)
	for _, c := range r.items {
		if patientID != "" && c.PatientID != patientID {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConsultationDate.After(out[j].ConsultationDate)
	})
	return out, nil
}
