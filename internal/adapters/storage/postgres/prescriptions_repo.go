package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-management/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

const prescriptionColumns = `
	id, patient_id, doctor_id,
	medication_name, dosage, frequency, duration,
	quantity, instructions, status,
	created_at, updated_at`

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prescriptions (`+prescriptionColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.PatientID,
		p.DoctorID,
		p.MedicationName,
		p.Dosage,
		p.Frequency,
		p.Duration,
		p.Quantity,
		p.Instructions,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PrescriptionsRepo) List(ctx context.Context, filter prescriptions.ListFilter) ([]prescriptions.Prescription, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE 1=1`)

	args := []any{}
	argN := 1
	if filter.PatientID != "" {
		sb.WriteString(fmt.Sprintf(" AND patient_id = $%d", argN))
		args = append(args, filter.PatientID)
		argN++
	}
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescriptions.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PrescriptionsRepo) UpdateStatus(ctx context.Context, id string, status prescriptions.Status, at time.Time) (prescriptions.Prescription, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE prescriptions
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+prescriptionColumns,
		id, string(status), at,
	)
	p, err := scanPrescription(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return prescriptions.Prescription{}, fmt.Errorf("prescription %s: %w", id, prescriptions.ErrNotFound)
		}
		return prescriptions.Prescription{}, err
	}
	return p, nil
}

func scanPrescription(s scanner) (prescriptions.Prescription, error) {
	var p prescriptions.Prescription
	var status string
	if err := s.Scan(
		&p.ID,
		&p.PatientID,
		&p.DoctorID,
		&p.MedicationName,
		&p.Dosage,
		&p.Frequency,
		&p.Duration,
		&p.Quantity,
		&p.Instructions,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return prescriptions.Prescription{}, err
	}
	p.Status = prescriptions.Status(status)
	return p, nil
}
