package postgrest

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"hospital-management/internal/domain/vitals"
)

type vitalsRow struct {
	ID                     string    `json:"id"`
	PatientID              string    `json:"patient_id"`
	NurseID                string    `json:"nurse_id"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic"`
	HeartRate              int       `json:"heart_rate"`
	Temperature            float64   `json:"temperature"`
	OxygenSaturation       int       `json:"oxygen_saturation"`
	RespiratoryRate        int       `json:"respiratory_rate"`
	Weight                 *float64  `json:"weight"`
	Height                 *float64  `json:"height"`
	Notes                  string    `json:"notes"`
	RecordedAt             time.Time `json:"recorded_at"`
}

type VitalsRepo struct {
	c *Client
}

func NewVitalsRepo(c *Client) *VitalsRepo {
	return &VitalsRepo{c: c}
}

func (r *VitalsRepo) Create(ctx context.Context, rec vitals.Record) error {
	return r.c.insert(ctx, "vitals", vitalsRow{
		ID:                     rec.ID,
		PatientID:              rec.PatientID,
		NurseID:                rec.NurseID,
		BloodPressureSystolic:  rec.Reading.SystolicPressure,
		BloodPressureDiastolic: rec.Reading.DiastolicPressure,
		HeartRate:              rec.Reading.HeartRate,
		Temperature:            rec.Reading.Temperature,
		OxygenSaturation:       rec.Reading.OxygenSaturation,
		RespiratoryRate:        rec.RespiratoryRate,
		Weight:                 rec.Weight,
		Height:                 rec.Height,
		Notes:                  rec.Notes,
		RecordedAt:             rec.RecordedAt,
	})
}

func (r *VitalsRepo) List(ctx context.Context, filter vitals.ListFilter) ([]vitals.Record, error) {
	q := url.Values{"order": {"recorded_at.desc"}}
	if filter.PatientID != "" {
		q.Set("patient_id", eq(filter.PatientID))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var rows []vitalsRow
	if err := r.c.selectRows(ctx, "vitals", q, &rows); err != nil {
		return nil, err
	}

	out := make([]vitals.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, vitals.Record{
			ID:        row.ID,
			PatientID: row.PatientID,
			NurseID:   row.NurseID,
			Reading: vitals.Reading{
				SystolicPressure:  row.BloodPressureSystolic,
				DiastolicPressure: row.BloodPressureDiastolic,
				HeartRate:         row.HeartRate,
				Temperature:       row.Temperature,
				OxygenSaturation:  row.OxygenSaturation,
			},
			RespiratoryRate: row.RespiratoryRate,
			Weight:          row.Weight,
			Height:          row.Height,
			Notes:           row.Notes,
			RecordedAt:      row.RecordedAt,
		})
	}
	return out, nil
}
