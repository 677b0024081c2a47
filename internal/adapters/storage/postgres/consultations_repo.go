package postgres

import (
	"context"
	"database/sql"

	"hospital-management/internal/domain/consultations"
)

type ConsultationsRepo struct {
	db *sql.DB
}

func NewConsultationsRepo(db *sql.DB) *ConsultationsRepo {
	return &ConsultationsRepo{db: db}
}

const consultationColumns = `
	id, patient_id, doctor_id, appointment_id,
	diagnosis, symptoms, treatment_plan, notes,
	status, consultation_date`

func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consultations (`+consultationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID,
		c.PatientID,
		c.DoctorID,
		c.AppointmentID,
		c.Diagnosis,
		c.Symptoms,
		c.TreatmentPlan,
		c.Notes,
		c.Status,
		c.ConsultationDate,
	)
	return err
}

func (r *ConsultationsRepo) List(ctx context.Context, patientID string) ([]consultations.Consultation, error) {
	q := `SELECT ` + consultationColumns + ` FROM consultations`
	var args []any
	if patientID != "" {
		q += ` WHERE patient_id = $1`
		args = append(args, patientID)
	}
	q += ` ORDER BY consultation_date DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultations.Consultation, 0)
	for rows.Next() {
		var c consultations.Consultation
		if err := rows.Scan(
			&c.ID,
			&c.PatientID,
			&c.DoctorID,
			&c.AppointmentID,
			&c.Diagnosis,
			&c.Symptoms,
			&c.TreatmentPlan,
			&c.Notes,
			&c.Status,
			&c.ConsultationDate,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
