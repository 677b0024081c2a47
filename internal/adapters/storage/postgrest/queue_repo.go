package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hospital-management/internal/domain/queue"
)

type queueRow struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	QueueType string    `json:"queue_type"`
	Status    string    `json:"status"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (row queueRow) toDomain() queue.Entry {
	return queue.Entry{
		ID:        row.ID,
		PatientID: row.PatientID,
		QueueType: row.QueueType,
		Status:    queue.Status(row.Status),
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type QueueRepo struct {
	c *Client
}

func NewQueueRepo(c *Client) *QueueRepo {
	return &QueueRepo{c: c}
}

func (r *QueueRepo) Create(ctx context.Context, e queue.Entry) error {
	return r.c.insert(ctx, "queue", queueRow{
		ID:        e.ID,
		PatientID: e.PatientID,
		QueueType: e.QueueType,
		Status:    string(e.Status),
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	})
}

func (r *QueueRepo) List(ctx context.Context, filter queue.ListFilter) ([]queue.Entry, error) {
	q := url.Values{"order": {"created_at.asc"}}
	if filter.QueueType != "" {
		q.Set("queue_type", eq(filter.QueueType))
	}
	if filter.Status != "" {
		q.Set("status", eq(string(filter.Status)))
	}

	var rows []queueRow
	if err := r.c.selectRows(ctx, "queue", q, &rows); err != nil {
		return nil, err
	}
	out := make([]queue.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *QueueRepo) UpdateStatus(ctx context.Context, id string, status queue.Status, at time.Time) (queue.Entry, error) {
	patch := map[string]any{"status": string(status), "updated_at": at}

	var rows []queueRow
	if err := r.c.update(ctx, "queue", byID(id), patch, &rows); err != nil {
		return queue.Entry{}, err
	}
	if len(rows) == 0 {
		return queue.Entry{}, fmt.Errorf("queue entry %s: %w", id, queue.ErrNotFound)
	}
	return rows[0].toDomain(), nil
}
