package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hospital-management/internal/domain/patients"
)

type patientRow struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patient_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      *string   `json:"date_of_birth"` // DATE viaja como YYYY-MM-DD
	Gender           string    `json:"gender"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	BloodType        string    `json:"blood_type"`
	EmergencyContact string    `json:"emergency_contact"`
	EmergencyPhone   string    `json:"emergency_phone"`
	Allergies        string    `json:"allergies"`
	MedicalHistory   string    `json:"medical_history"`
	CreatedAt        time.Time `json:"created_at"`
}

type PatientsRepo struct {
	c *Client
}

func NewPatientsRepo(c *Client) *PatientsRepo {
	return &PatientsRepo{c: c}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	row := patientRow{
		ID:               p.ID,
		PatientID:        p.PatientNumber,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Gender:           p.Gender,
		Email:            p.Email,
		Phone:            p.Phone,
		Address:          p.Address,
		BloodType:        p.BloodType,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Allergies:        p.Allergies,
		MedicalHistory:   p.MedicalHistory,
		CreatedAt:        p.CreatedAt,
	}
	if p.DateOfBirth != nil {
		d := p.DateOfBirth.Format("2006-01-02")
		row.DateOfBirth = &d
	}
	return r.c.insert(ctx, "patients", row)
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	var rows []patientRow
	if err := r.c.selectRows(ctx, "patients", byID(id), &rows); err != nil {
		return patients.Patient{}, err
	}
	if len(rows) == 0 {
		return patients.Patient{}, fmt.Errorf("patient %s: %w", id, patients.ErrNotFound)
	}
	return rows[0].toDomain(), nil
}

func (r *PatientsRepo) List(ctx context.Context, filter patients.ListFilter) ([]patients.Patient, error) {
	q := url.Values{"order": {"created_at.desc"}}
	switch {
	case filter.Phone != "":
		q.Set("phone", eq(filter.Phone))
	case filter.PatientNumber != "":
		q.Set("patient_id", eq(filter.PatientNumber))
	}

	var rows []patientRow
	if err := r.c.selectRows(ctx, "patients", q, &rows); err != nil {
		return nil, err
	}
	out := make([]patients.Patient, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (row patientRow) toDomain() patients.Patient {
	p := patients.Patient{
		ID:               row.ID,
		PatientNumber:    row.PatientID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Gender:           row.Gender,
		Email:            row.Email,
		Phone:            row.Phone,
		Address:          row.Address,
		BloodType:        row.BloodType,
		EmergencyContact: row.EmergencyContact,
		EmergencyPhone:   row.EmergencyPhone,
		Allergies:        row.Allergies,
		MedicalHistory:   row.MedicalHistory,
		CreatedAt:        row.CreatedAt,
	}
	if row.DateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *row.DateOfBirth); err == nil {
			p.DateOfBirth = &t
		}
	}
	return p
}
