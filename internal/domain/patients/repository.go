package patients

import "context"

type Repository interface {
	Create(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context, filter ListFilter) ([]Patient, error)
}

// ListFilter: Phone tiene prioridad sobre PatientNumber. Orden created_at DESC.
type ListFilter struct {
	Phone         string
	PatientNumber string
}
