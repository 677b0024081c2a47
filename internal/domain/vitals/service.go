package vitals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Observer recibe cada lectura clasificada (p.ej. métricas). Puede ser nil.
type Observer interface {
	ObserveReading(labels []AnomalyLabel)
}

type Service struct {
	repo       Repository
	classifier *Classifier
	observer   Observer
	now        func() time.Time
}

type Option func(*Service)

func WithClassifier(c *Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		classifier: defaultClassifier,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type RecordInput struct {
	PatientID       string
	NurseID         string
	Reading         Reading
	RespiratoryRate int
	Weight          *float64
	Height          *float64
	Notes           string
}

// Record clasifica la lectura y la persiste. Las anomalías no bloquean el registro.
func (s *Service) Record(ctx context.Context, in RecordInput) (Record, error) {
	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" {
		return Record{}, ErrInvalidInput
	}

	labels := s.classifier.Classify(in.Reading)

	rec := Record{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		NurseID:         strings.TrimSpace(in.NurseID),
		Reading:         in.Reading,
		RespiratoryRate: in.RespiratoryRate,
		Weight:          in.Weight,
		Height:          in.Height,
		Notes:           strings.TrimSpace(in.Notes),
		RecordedAt:      s.now().UTC(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}

	if s.observer != nil {
		s.observer.ObserveReading(labels)
	}

	rec.Anomalies = labels
	return rec, nil
}

// Classify no persiste nada.
func (s *Service) Classify(r Reading) []AnomalyLabel {
	return s.classifier.Classify(r)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	filter.PatientID = strings.TrimSpace(filter.PatientID)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Anomalies = s.classifier.Classify(items[i].Reading)
	}
	return items, nil
}

// Monitoring arma el tablero de enfermería: última lectura por paciente.
func (s *Service) Monitoring(ctx context.Context) ([]MonitoredPatient, error) {
	items, err := s.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]MonitoredPatient, 0)
	for _, rec := range items {
		// items viene recorded_at DESC: la primera por paciente es la más reciente
		if _, ok := seen[rec.PatientID]; ok {
			continue
		}
		seen[rec.PatientID] = struct{}{}

		cond := ConditionStable
		if len(rec.Anomalies) > 0 {
			cond = ConditionCritical
		}
		out = append(out, MonitoredPatient{
			PatientID:  rec.PatientID,
			Latest:     rec,
			Condition:  cond,
			AlertCount: len(rec.Anomalies),
		})
	}
	return out, nil
}
