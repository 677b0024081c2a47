package consultations

import "context"

type Repository interface {
	Create(ctx context.Context, c Consultation) error
	// List devuelve por consultation_date DESC.
	List(ctx context.Context, patientID string) ([]Consultation, error)
}
