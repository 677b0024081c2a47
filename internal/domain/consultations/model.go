package consultations

import "time"

// StatusCompleted: las consultas se registran ya cerradas.
const StatusCompleted = "completed"

type Consultation struct {
	ID               string
	PatientID        string
	DoctorID         string
	AppointmentID    string // opcional
	Diagnosis        string
	Symptoms         string
	TreatmentPlan    string
	Notes            string
	Status           string
	ConsultationDate time.Time
}
