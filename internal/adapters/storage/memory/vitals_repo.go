package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-management/internal/domain/vitals"
)

type vitalsRepo struct {
	mu    sync.RWMutex
	items []vitals.Record
}

func NewVitalsRepo() vitals.Repository {
	return &vitalsRepo{}
}

func (r *vitalsRepo) Create(ctx context.Context, rec vitals.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("vitals id required")
	}
	// las anomalías se recalculan al leer
	rec.Anomalies = nil
	r.items = append(r.items, rec)
	return nil
}

func (r *vitalsRepo) List(ctx context.Context, filter vitals.ListFilter) ([]vitals.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vitals.Record, 0)
	for _, rec := range r.items {
		if filter.PatientID != "" && rec.PatientID != filter.PatientID {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
