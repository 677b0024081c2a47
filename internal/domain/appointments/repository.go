package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	// List devuelve por appointment_date DESC.
	List(ctx context.Context, patientID string) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error)
}
