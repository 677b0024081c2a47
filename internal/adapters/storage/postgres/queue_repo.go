package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-management/internal/domain/queue"
)

type QueueRepo struct {
	db *sql.DB
}

func NewQueueRepo(db *sql.DB) *QueueRepo {
	return &QueueRepo{db: db}
}

const queueColumns = `id, patient_id, queue_type, status, position, created_at, updated_at`

func (r *QueueRepo) Create(ctx context.Context, e queue.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO queue (`+queueColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.PatientID,
		e.QueueType,
		string(e.Status),
		e.Position,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *QueueRepo) List(ctx context.Context, filter queue.ListFilter) ([]queue.Entry, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + queueColumns + ` FROM queue WHERE 1=1`)

	args := []any{}
	argN := 1
	if filter.QueueType != "" {
		sb.WriteString(fmt.Sprintf(" AND queue_type = $%d", argN))
		args = append(args, filter.QueueType)
		argN++
	}
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
	}
	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]queue.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *QueueRepo) UpdateStatus(ctx context.Context, id string, status queue.Status, at time.Time) (queue.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE queue
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+queueColumns,
		id, string(status), at,
	)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return queue.Entry{}, fmt.Errorf("queue entry %s: %w", id, queue.ErrNotFound)
		}
		return queue.Entry{}, err
	}
	return e, nil
}

func scanEntry(s scanner) (queue.Entry, error) {
	var e queue.Entry
	var status string
	if err := s.Scan(&e.ID, &e.PatientID, &e.QueueType, &status, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return queue.Entry{}, err
	}
	e.Status = queue.Status(status)
	return e, nil
}
