package queue

import "time"

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Entry es un turno en una cola (p.ej. "consultation", "pharmacy").
type Entry struct {
	ID        string
	PatientID string
	QueueType string
	Status    Status
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats: contadores del tablero de recepción.
type Stats struct {
	Waiting    int `json:"waiting"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}
