package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hospital-management/internal/domain/appointments"
)

type appointmentRow struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (row appointmentRow) toDomain() appointments.Appointment {
	return appointments.Appointment{
		ID:              row.ID,
		PatientID:       row.PatientID,
		DoctorID:        row.DoctorID,
		AppointmentDate: row.AppointmentDate,
		Reason:          row.Reason,
		Status:          appointments.Status(row.Status),
		CreatedAt:       row.CreatedAt,
	}
}

type AppointmentsRepo struct {
	c *Client
}

func NewAppointmentsRepo(c *Client) *AppointmentsRepo {
	return &AppointmentsRepo{c: c}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return r.c.insert(ctx, "appointments", appointmentRow{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		Reason:          a.Reason,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	})
}

func (r *AppointmentsRepo) List(ctx context.Context, patientID string) ([]appointments.Appointment, error) {
	q := url.Values{"order": {"appointment_date.desc"}}
	if patientID != "" {
		q.Set("patient_id", eq(patientID))
	}

	var rows []appointmentRow
	if err := r.c.selectRows(ctx, "appointments", q, &rows); err != nil {
		return nil, err
	}
	out := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	var rows []appointmentRow
	if err := r.c.update(ctx, "appointments", byID(id), map[string]string{"status": string(status)}, &rows); err != nil {
		return appointments.Appointment{}, err
	}
	if len(rows) == 0 {
		return appointments.Appointment{}, fmt.Errorf("appointment %s: %w", id, appointments.ErrNotFound)
	}
	return rows[0].toDomain(), nil
}
