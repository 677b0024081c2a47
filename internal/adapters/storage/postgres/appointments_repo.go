package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hospital-management/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `id, patient_id, doctor_id, appointment_date, reason, status, created_at`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.PatientID,
		a.DoctorID,
		a.AppointmentDate,
		a.Reason,
		string(a.Status),
		a.CreatedAt,
	)
	return err
}

func (r *AppointmentsRepo) List(ctx context.Context, patientID string) ([]appointments.Appointment, error) {
	q := `SELECT ` + appointmentColumns + ` FROM appointments`
	var args []any
	if patientID != "" {
		q += ` WHERE patient_id = $1`
		args = append(args, patientID)
	}
	q += ` ORDER BY appointment_date DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET status = $2
		WHERE id = $1
		RETURNING `+appointmentColumns,
		id, string(status),
	)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, fmt.Errorf("appointment %s: %w", id, appointments.ErrNotFound)
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	if err := s.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.Reason, &status, &a.CreatedAt); err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}
