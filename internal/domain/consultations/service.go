package consultations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	PatientID     string
	DoctorID      string
	AppointmentID string
	Diagnosis     string
	Symptoms      string
	TreatmentPlan string
	Notes         string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Consultation, error) {
	patientID := strings.TrimSpace(in.PatientID)
	doctorID := strings.TrimSpace(in.DoctorID)
	if patientID == "" || doctorID == "" {
		return Consultation{}, ErrInvalidInput
	}

	c := Consultation{
		ID:               uuid.NewString(),
		PatientID:        patientID,
		DoctorID:         doctorID,
		AppointmentID:    strings.TrimSpace(in.AppointmentID),
		Diagnosis:        strings.TrimSpace(in.Diagnosis),
		Symptoms:         strings.TrimSpace(in.Symptoms),
		TreatmentPlan:    strings.TrimSpace(in.TreatmentPlan),
		Notes:            strings.TrimSpace(in.Notes),
		Status:           StatusCompleted,
		ConsultationDate: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Consultation{}, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, patientID string) ([]Consultation, error) {
	return s.repo.List(ctx, strings.TrimSpace(patientID))
}
