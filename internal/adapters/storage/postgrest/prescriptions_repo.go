package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hospital-management/internal/domain/prescriptions"
)

type prescriptionRow struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Quantity       int       `json:"quantity"`
	Instructions   string    `json:"instructions"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (row prescriptionRow) toDomain() prescriptions.Prescription {
	return prescriptions.Prescription{
		ID:             row.ID,
		PatientID:      row.PatientID,
		DoctorID:       row.DoctorID,
		MedicationName: row.MedicationName,
		Dosage:         row.Dosage,
		Frequency:      row.Frequency,
		Duration:       row.Duration,
		Quantity:       row.Quantity,
		Instructions:   row.Instructions,
		Status:         prescriptions.Status(row.Status),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type PrescriptionsRepo struct {
	c *Client
}

func NewPrescriptionsRepo(c *Client) *PrescriptionsRepo {
	return &PrescriptionsRepo{c: c}
}

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) error {
	return r.c.insert(ctx, "prescriptions", prescriptionRow{
		ID:             p.ID,
		PatientID:      p.PatientID,
		DoctorID:       p.DoctorID,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		Duration:       p.Duration,
		Quantity:       p.Quantity,
		Instructions:   p.Instructions,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})
}

func (r *PrescriptionsRepo) List(ctx context.Context, filter prescriptions.ListFilter) ([]prescriptions.Prescription, error) {
	q := url.Values{"order": {"created_at.desc"}}
	if filter.PatientID != "" {
		q.Set("patient_id", eq(filter.PatientID))
	}
	if filter.Status != "" {
		q.Set("status", eq(string(filter.Status)))
	}

	var rows []prescriptionRow
	if err := r.c.selectRows(ctx, "prescriptions", q, &rows); err != nil {
		return nil, err
	}
	out := make([]prescriptions.Prescription, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PrescriptionsRepo) UpdateStatus(ctx context.Context, id string, status prescriptions.Status, at time.Time) (prescriptions.Prescription, error) {
	patch := map[string]any{"status": string(status), "updated_at": at}

	var rows []prescriptionRow
	if err := r.c.update(ctx, "prescriptions", byID(id), patch, &rows); err != nil {
		return prescriptions.Prescription{}, err
	}
	if len(rows) == 0 {
		return prescriptions.Prescription{}, fmt.Errorf("prescription %s: %w", id, prescriptions.ErrNotFound)
	}
	return rows[0].toDomain(), nil
}
