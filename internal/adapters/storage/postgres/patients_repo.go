package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hospital-management/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id, patient_id,
	first_name, last_name, date_of_birth, gender,
	email, phone, address,
	blood_type, emergency_contact, emergency_phone,
	allergies, medical_history,
	created_at`

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (`+patientColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.PatientNumber,
		p.FirstName,
		p.LastName,
		nullTime(p.DateOfBirth),
		p.Gender,
		p.Email,
		p.Phone,
		p.Address,
		p.BloodType,
		p.EmergencyContact,
		p.EmergencyPhone,
		p.Allergies,
		p.MedicalHistory,
		p.CreatedAt,
	)
	return err
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, patients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, fmt.Errorf("patient %s: %w", id, patients.ErrNotFound)
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context, filter patients.ListFilter) ([]patients.Patient, error) {
	q := `SELECT ` + patientColumns + ` FROM patients`
	var args []any

	switch {
	case filter.Phone != "":
		q += ` WHERE phone = $1`
		args = append(args, filter.Phone)
	case filter.PatientNumber != "":
		q += ` WHERE patient_id = $1`
		args = append(args, filter.PatientNumber)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPatient(s scanner) (patients.Patient, error) {
	var p patients.Patient
	var dob sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.PatientNumber,
		&p.FirstName,
		&p.LastName,
		&dob,
		&p.Gender,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.BloodType,
		&p.EmergencyContact,
		&p.EmergencyPhone,
		&p.Allergies,
		&p.MedicalHistory,
		&p.CreatedAt,
	); err != nil {
		return patients.Patient{}, err
	}
	if dob.Valid {
		t := dob.Time
		p.DateOfBirth = &t
	}
	return p, nil
}
