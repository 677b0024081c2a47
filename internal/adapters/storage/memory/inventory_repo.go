package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-management/internal/domain/inventory"
)

type inventoryRepo struct {
	mu   sync.RWMutex
	byID map[string]inventory.Item
}

func NewInventoryRepo() inventory.Repository {
	return &inventoryRepo{
		byID: make(map[string]inventory.Item),
	}
}

func (r *inventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("inventory id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("inventory item already exists")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return it, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Item, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out, nil
}

func (r *inventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[it.ID]; !exists {
		return inventory.ErrNotFound
	}
	r.byID[it.ID] = it
	return nil
}
