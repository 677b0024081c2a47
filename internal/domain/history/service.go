// Package history arma la ficha completa de un paciente (vista "ver paciente"
// de médicos y recepción) a partir de los demás dominios.
package history

import (
	"context"
	"fmt"

	"hospital-management/internal/domain/appointments"
	"hospital-management/internal/domain/consultations"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/prescriptions"
	"hospital-management/internal/domain/vitals"
)

// Interfaces mínimas: los *Service de cada dominio las cumplen.
type PatientGetter interface {
	GetByID(ctx context.Context, id string) (patients.Patient, error)
}

type VitalsLister interface {
	List(ctx context.Context, filter vitals.ListFilter) ([]vitals.Record, error)
}

type PrescriptionLister interface {
	List(ctx context.Context, filter prescriptions.ListFilter) ([]prescriptions.Prescription, error)
}

type ConsultationLister interface {
	List(ctx context.Context, patientID string) ([]consultations.Consultation, error)
}

type AppointmentLister interface {
	List(ctx context.Context, patientID string) ([]appointments.Appointment, error)
}

type Service struct {
	patients      PatientGetter
	vitals        VitalsLister
	prescriptions PrescriptionLister
	consultations ConsultationLister
	appointments  AppointmentLister
}

func NewService(p PatientGetter, v VitalsLister, rx PrescriptionLister, c ConsultationLister, a AppointmentLister) *Service {
	return &Service{
		patients:      p,
		vitals:        v,
		prescriptions: rx,
		consultations: c,
		appointments:  a,
	}
}

type PatientHistory struct {
	Patient       patients.Patient
	Vitals        []vitals.Record
	Prescriptions []prescriptions.Prescription
	Consultations []consultations.Consultation
	Appointments  []appointments.Appointment
}

// VitalsLimit acota las lecturas incluidas en la ficha.
const VitalsLimit = 20

func (s *Service) Get(ctx context.Context, patientID string) (PatientHistory, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return PatientHistory{}, err
	}

	h := PatientHistory{Patient: p}

	if h.Vitals, err = s.vitals.List(ctx, vitals.ListFilter{PatientID: p.ID, Limit: VitalsLimit}); err != nil {
		return PatientHistory{}, fmt.Errorf("history vitals: %w", err)
	}
	if h.Prescriptions, err = s.prescriptions.List(ctx, prescriptions.ListFilter{PatientID: p.ID}); err != nil {
		return PatientHistory{}, fmt.Errorf("history prescriptions: %w", err)
	}
	if h.Consultations, err = s.consultations.List(ctx, p.ID); err != nil {
		return PatientHistory{}, fmt.Errorf("history consultations: %w", err)
	}
	if h.Appointments, err = s.appointments.List(ctx, p.ID); err != nil {
		return PatientHistory{}, fmt.Errorf("history appointments: %w", err)
	}
	return h, nil
}
