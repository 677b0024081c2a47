package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hospital-management/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `id, medication_name, unit, quantity, reorder_level, supplier, price, last_updated`

// price viaja como NUMERIC: decimal.Decimal implementa Scanner/Valuer.
func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (`+inventoryColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		it.ID,
		it.MedicationName,
		it.Unit,
		it.Quantity,
		it.ReorderLevel,
		it.Supplier,
		it.Price,
		it.LastUpdated,
	)
	return err
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.Item{}, fmt.Errorf("inventory %s: %w", id, inventory.ErrNotFound)
		}
		return inventory.Item{}, err
	}
	return it, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]inventory.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY last_updated DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory
		SET medication_name = $2, unit = $3, quantity = $4, reorder_level = $5,
		    supplier = $6, price = $7, last_updated = $8
		WHERE id = $1
	`,
		it.ID,
		it.MedicationName,
		it.Unit,
		it.Quantity,
		it.ReorderLevel,
		it.Supplier,
		it.Price,
		it.LastUpdated,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("inventory %s: %w", it.ID, inventory.ErrNotFound)
	}
	return nil
}

func scanItem(s scanner) (inventory.Item, error) {
	var it inventory.Item
	if err := s.Scan(
		&it.ID,
		&it.MedicationName,
		&it.Unit,
		&it.Quantity,
		&it.ReorderLevel,
		&it.Supplier,
		&it.Price,
		&it.LastUpdated,
	); err != nil {
		return inventory.Item{}, err
	}
	return it, nil
}
