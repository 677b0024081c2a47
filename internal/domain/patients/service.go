package patients

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("patient not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	FirstName        string
	LastName         string
	DateOfBirth      *time.Time
	Gender           string
	Email            string
	Phone            string
	Address          string
	BloodType        string
	EmergencyContact string
	EmergencyPhone   string
	Allergies        string
	MedicalHistory   string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Patient, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Patient{}, ErrInvalidInput
	}

	now := s.now().UTC()
	p := Patient{
		ID:               uuid.NewString(),
		PatientNumber:    "P" + strconv.FormatInt(now.UnixMilli(), 10),
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		DateOfBirth:      in.DateOfBirth,
		Gender:           strings.TrimSpace(in.Gender),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Address:          strings.TrimSpace(in.Address),
		BloodType:        strings.ToUpper(strings.TrimSpace(in.BloodType)),
		EmergencyContact: strings.TrimSpace(in.EmergencyContact),
		EmergencyPhone:   strings.TrimSpace(in.EmergencyPhone),
		Allergies:        strings.TrimSpace(in.Allergies),
		MedicalHistory:   strings.TrimSpace(in.MedicalHistory),
		CreatedAt:        now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Patient, error) {
	filter.Phone = strings.TrimSpace(filter.Phone)
	filter.PatientNumber = strings.TrimSpace(filter.PatientNumber)
	if filter.Phone != "" {
		filter.PatientNumber = ""
	}
	return s.repo.List(ctx, filter)
}
