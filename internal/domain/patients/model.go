package patients

import "time"

// Patient es el registro creado por recepción.
type Patient struct {
	ID string
	// PatientNumber es el número visible en recepción ("P" + unix millis).
	PatientNumber string

	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Gender      string

	Email   string
	Phone   string
	Address string

	BloodType        string
	EmergencyContact string
	EmergencyPhone   string
	Allergies        string
	MedicalHistory   string

	CreatedAt time.Time
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
