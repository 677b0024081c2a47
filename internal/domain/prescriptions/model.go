package prescriptions

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDispensed Status = "dispensed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDispensed, StatusCancelled:
		return true
	}
	return false
}

type Prescription struct {
	ID             string
	PatientID      string
	DoctorID       string
	MedicationName string
	Dosage         string
	Frequency      string
	Duration       string
	Quantity       int
	Instructions   string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
