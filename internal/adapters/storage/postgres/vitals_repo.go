package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"hospital-management/internal/domain/vitals"
)

type VitalsRepo struct {
	db *sql.DB
}

func NewVitalsRepo(db *sql.DB) *VitalsRepo {
	return &VitalsRepo{db: db}
}

const vitalsColumns = `
	id, patient_id, nurse_id,
	blood_pressure_systolic, blood_pressure_diastolic,
	heart_rate, temperature, oxygen_saturation,
	respiratory_rate, weight, height,
	notes, recorded_at`

// Create no guarda anomalías: se derivan de la lectura.
func (r *VitalsRepo) Create(ctx context.Context, rec vitals.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vitals (`+vitalsColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		rec.ID,
		rec.PatientID,
		rec.NurseID,
		rec.Reading.SystolicPressure,
		rec.Reading.DiastolicPressure,
		rec.Reading.HeartRate,
		rec.Reading.Temperature,
		rec.Reading.OxygenSaturation,
		rec.RespiratoryRate,
		nullFloat(rec.Weight),
		nullFloat(rec.Height),
		rec.Notes,
		rec.RecordedAt,
	)
	return err
}

func (r *VitalsRepo) List(ctx context.Context, filter vitals.ListFilter) ([]vitals.Record, error) {
	q := `SELECT ` + vitalsColumns + ` FROM vitals`
	args := []any{}
	argN := 1

	if filter.PatientID != "" {
		q += fmt.Sprintf(` WHERE patient_id = $%d`, argN)
		args = append(args, filter.PatientID)
		argN++
	}
	q += ` ORDER BY recorded_at DESC`
	if filter.Limit > 0 {
		q += fmt.Sprintf(` LIMIT $%d`, argN)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vitals.Record, 0)
	for rows.Next() {
		var rec vitals.Record
		var weight, height sql.NullFloat64
		if err := rows.Scan(
			&rec.ID,
			&rec.PatientID,
			&rec.NurseID,
			&rec.Reading.SystolicPressure,
			&rec.Reading.DiastolicPressure,
			&rec.Reading.HeartRate,
			&rec.Reading.Temperature,
			&rec.Reading.OxygenSaturation,
			&rec.RespiratoryRate,
			&weight,
			&height,
			&rec.Notes,
			&rec.RecordedAt,
		); err != nil {
			return nil, err
		}
		rec.Weight = floatPtr(weight)
		rec.Height = floatPtr(height)
		out = append(out, rec)
	}
	return out, rows.Err()
}
