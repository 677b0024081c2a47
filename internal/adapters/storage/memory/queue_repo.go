package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"hospital-management/internal/domain/queue"
)

type queueRepo struct {
	mu   sync.RWMutex
	byID map[string]queue.Entry
}

func NewQueueRepo() queue.Repository {
	return &queueRepo{
		byID: make(map[string]queue.Entry),
	}
}

func (r *queueRepo) Create(ctx context.Context, e queue.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("queue entry id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *queueRepo) List(ctx context.Context, filter queue.ListFilter) ([]queue.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]queue.Entry, 0)
	for _, e := range r.byID {
		if filter.QueueType != "" && e.QueueType != filter.QueueType {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, e)
	}

	// FIFO
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *queueRepo) UpdateStatus(ctx context.Context, id string, status queue.Status, at time.Time) (queue.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return queue.Entry{}, queue.ErrNotFound
	}
	e.Status = status
	e.UpdatedAt = at
	r.byID[id] = e
	return e, nil
}
