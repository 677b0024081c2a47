package appointments

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
	ErrNotFound      = errors.New("appointment not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ScheduleInput struct {
	PatientID       string
	DoctorID        string
	AppointmentDate time.Time
	Reason          string
	Status          Status // vacío => scheduled
}

func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (Appointment, error) {
	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" || in.AppointmentDate.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusScheduled
	}
	if !status.Valid() {
		return Appointment{}, ErrInvalidStatus
	}

	a := Appointment{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		DoctorID:        strings.TrimSpace(in.DoctorID),
		AppointmentDate: in.AppointmentDate.UTC(),
		Reason:          strings.TrimSpace(in.Reason),
		Status:          status,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, patientID string) ([]Appointment, error) {
	return s.repo.List(ctx, strings.TrimSpace(patientID))
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !status.Valid() {
		return Appointment{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
