package queue

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	// List devuelve por created_at ASC. Campos vacíos no filtran.
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (Entry, error)
}

type ListFilter struct {
	QueueType string
	Status    Status
}
