package vitals

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}

// ListFilter: PatientID vacío = todos. Limit <= 0 = sin límite.
// Los adapters devuelven recorded_at DESC.
type ListFilter struct {
	PatientID string
	Limit     int
}
