package queue

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
	ErrNotFound      = errors.New("queue entry not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type EnqueueInput struct {
	PatientID string
	QueueType string
	Position  int // <= 0 => siguiente posición libre
}

func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (Entry, error) {
	patientID := strings.TrimSpace(in.PatientID)
	queueType := strings.TrimSpace(in.QueueType)
	if patientID == "" || queueType == "" {
		return Entry{}, ErrInvalidInput
	}

	pos := in.Position
	if pos <= 0 {
		waiting, err := s.repo.List(ctx, ListFilter{QueueType: queueType, Status: StatusWaiting})
		if err != nil {
			return Entry{}, err
		}
		pos = nextPosition(waiting)
	}

	now := s.now().UTC()
	e := Entry{
		ID:        uuid.NewString(),
		PatientID: patientID,
		QueueType: queueType,
		Status:    StatusWaiting,
		Position:  pos,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// nextPosition: uno más que la mayor posición en espera, nunca una ocupada.
func nextPosition(waiting []Entry) int {
	top := 0
	for _, e := range waiting {
		top = max(top, e.Position)
	}
	return top + 1
}

// Waiting devuelve solo los turnos en espera, el más antiguo primero.
func (s *Service) Waiting(ctx context.Context, queueType string) ([]Entry, error) {
	return s.repo.List(ctx, ListFilter{QueueType: strings.TrimSpace(queueType), Status: StatusWaiting})
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, ErrInvalidInput
	}
	if !status.Valid() {
		return Entry{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
}

func (s *Service) Stats(ctx context.Context, queueType string) (Stats, error) {
	all, err := s.repo.List(ctx, ListFilter{QueueType: strings.TrimSpace(queueType)})
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, e := range all {
		switch e.Status {
		case StatusWaiting:
			st.Waiting++
		case StatusInProgress:
			st.InProgress++
		case StatusCompleted:
			st.Completed++
		}
	}
	return st, nil
}
