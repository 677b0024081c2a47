package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hospital-management/internal/domain/inventory"

	"github.com/shopspring/decimal"
)

type inventoryRow struct {
	ID             string          `json:"id"`
	MedicationName string          `json:"medication_name"`
	Unit           string          `json:"unit"`
	Quantity       int             `json:"quantity"`
	ReorderLevel   int             `json:"reorder_level"`
	Supplier       string          `json:"supplier"`
	Price          decimal.Decimal `json:"price"`
	LastUpdated    time.Time       `json:"last_updated"`
}

type InventoryRepo struct {
	c *Client
}

func NewInventoryRepo(c *Client) *InventoryRepo {
	return &InventoryRepo{c: c}
}

func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	return r.c.insert(ctx, "inventory", inventoryRow(it))
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	var rows []inventoryRow
	if err := r.c.selectRows(ctx, "inventory", byID(id), &rows); err != nil {
		return inventory.Item{}, err
	}
	if len(rows) == 0 {
		return inventory.Item{}, fmt.Errorf("inventory %s: %w", id, inventory.ErrNotFound)
	}
	return inventory.Item(rows[0]), nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]inventory.Item, error) {
	var rows []inventoryRow
	if err := r.c.selectRows(ctx, "inventory", url.Values{"order": {"last_updated.desc"}}, &rows); err != nil {
		return nil, err
	}
	out := make([]inventory.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventory.Item(row))
	}
	return out, nil
}

func (r *InventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	var rows []inventoryRow
	if err := r.c.update(ctx, "inventory", byID(it.ID), inventoryRow(it), &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("inventory %s: %w", it.ID, inventory.ErrNotFound)
	}
	return nil
}
