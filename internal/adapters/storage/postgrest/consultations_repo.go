package postgrest

import (
	"context"
	"net/url"
	"time"

	"hospital-management/internal/domain/consultations"
)

type consultationRow struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	AppointmentID    string    `json:"appointment_id"`
	Diagnosis        string    `json:"diagnosis"`
	Symptoms         string    `json:"symptoms"`
	TreatmentPlan    string    `json:"treatment_plan"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	ConsultationDate time.Time `json:"consultation_date"`
}

type ConsultationsRepo struct {
	c *Client
}

func NewConsultationsRepo(c *Client) *ConsultationsRepo {
	return &ConsultationsRepo{c: c}
}

func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	return r.c.insert(ctx, "consultations", consultationRow(c))
}

func (r *ConsultationsRepo) List(ctx context.Context, patientID string) ([]consultations.Consultation, error) {
	q := url.Values{"order": {"consultation_date.desc"}}
	if patientID != "" {
		q.Set("patient_id", eq(patientID))
	}

	var rows []consultationRow
	if err := r.c.selectRows(ctx, "consultations", q, &rows); err != nil {
		return nil, err
	}
	out := make([]consultations.Consultation, 0, len(rows))
	for _, row := range rows {
		out = append(out, consultations.Consultation(row))
	}
	return out, nil
}
