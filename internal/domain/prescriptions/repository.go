package prescriptions

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Prescription) error
	// List devuelve por created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]Prescription, error)
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (Prescription, error)
}

type ListFilter struct {
	PatientID string
	Status    Status
}
