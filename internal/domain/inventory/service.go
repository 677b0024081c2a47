package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("inventory item not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	MedicationName string
	Unit           string
	Quantity       int
	ReorderLevel   int
	Supplier       string
	Price          decimal.Decimal
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	name := strings.TrimSpace(in.MedicationName)
	if name == "" {
		return Item{}, ErrInvalidInput
	}

	it := Item{
		ID:             uuid.NewString(),
		MedicationName: name,
		Unit:           strings.TrimSpace(in.Unit),
		Quantity:       in.Quantity,
		ReorderLevel:   in.ReorderLevel,
		Supplier:       strings.TrimSpace(in.Supplier),
		Price:          in.Price,
		LastUpdated:    s.now().UTC(),
	}
	if err := validate(it); err != nil {
		return Item{}, err
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// LowStock filtra en memoria: el umbral es por fila.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrInvalidInput
	}

	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Item{}, err
	}

	next := p.apply(cur)
	next.MedicationName = strings.TrimSpace(next.MedicationName)
	if next.MedicationName == "" {
		return Item{}, ErrInvalidInput
	}
	if err := validate(next); err != nil {
		return Item{}, err
	}
	next.LastUpdated = s.now().UTC()

	if err := s.repo.Update(ctx, next); err != nil {
		return Item{}, err
	}
	return next, nil
}

func validate(it Item) error {
	if it.Quantity < 0 || it.ReorderLevel < 0 || it.Price.IsNegative() {
		return ErrInvalidInput
	}
	return nil
}
