package prescriptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("prescription not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type PrescribeInput struct {
	PatientID      string
	DoctorID       string
	MedicationName string
	Dosage         string
	Frequency      string
	Duration       string
	Quantity       int // <= 0 => 1
	Instructions   string
}

func (s *Service) Prescribe(ctx context.Context, in PrescribeInput) (Prescription, error) {
	patientID := strings.TrimSpace(in.PatientID)
	medication := strings.TrimSpace(in.MedicationName)
	if patientID == "" || medication == "" || strings.TrimSpace(in.Dosage) == "" {
		return Prescription{}, ErrInvalidInput
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	now := s.now().UTC()
	p := Prescription{
		ID:             uuid.NewString(),
		PatientID:      patientID,
		DoctorID:       strings.TrimSpace(in.DoctorID),
		MedicationName: medication,
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      strings.TrimSpace(in.Frequency),
		Duration:       strings.TrimSpace(in.Duration),
		Quantity:       qty,
		Instructions:   strings.TrimSpace(in.Instructions),
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Prescription{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Prescription, error) {
	filter.PatientID = strings.TrimSpace(filter.PatientID)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus: farmacia marca dispensada o cancelada.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Prescription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Prescription{}, ErrInvalidInput
	}
	if !status.Valid() {
		return Prescription{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
}
