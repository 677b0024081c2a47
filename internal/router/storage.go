package router

import (
	"database/sql"

	mem "hospital-management/internal/adapters/storage/memory"
	pg "hospital-management/internal/adapters/storage/postgres"
	"hospital-management/internal/adapters/storage/postgrest"
	"hospital-management/internal/domain/appointments"
	"hospital-management/internal/domain/consultations"
	"hospital-management/internal/domain/inventory"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/prescriptions"
	"hospital-management/internal/domain/queue"
	"hospital-management/internal/domain/vitals"
)

// Repositories agrupa los repos de todos los dominios. Se arma una vez según
// el driver de almacenamiento y se comparte entre services.
type Repositories struct {
	Patients      patients.Repository
	Vitals        vitals.Repository
	Appointments  appointments.Repository
	Consultations consultations.Repository
	Prescriptions prescriptions.Repository
	Inventory     inventory.Repository
	Queue         queue.Repository
}

func MemoryRepositories() *Repositories {
	return &Repositories{
		Patients:      mem.NewPatientRepo(),
		Vitals:        mem.NewVitalsRepo(),
		Appointments:  mem.NewAppointmentRepo(),
		Consultations: mem.NewConsultationRepo(),
		Prescriptions: mem.NewPrescriptionRepo(),
		Inventory:     mem.NewInventoryRepo(),
		Queue:         mem.NewQueueRepo(),
	}
}

func PostgresRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Patients:      pg.NewPatientsRepo(db),
		Vitals:        pg.NewVitalsRepo(db),
		Appointments:  pg.NewAppointmentsRepo(db),
		Consultations: pg.NewConsultationsRepo(db),
		Prescriptions: pg.NewPrescriptionsRepo(db),
		Inventory:     pg.NewInventoryRepo(db),
		Queue:         pg.NewQueueRepo(db),
	}
}

// PostgRESTRepositories usa la API REST de Supabase (mismas tablas).
func PostgRESTRepositories(c *postgrest.Client) *Repositories {
	return &Repositories{
		Patients:      postgrest.NewPatientsRepo(c),
		Vitals:        postgrest.NewVitalsRepo(c),
		Appointments:  postgrest.NewAppointmentsRepo(c),
		Consultations: postgrest.NewConsultationsRepo(c),
		Prescriptions: postgrest.NewPrescriptionsRepo(c),
		Inventory:     postgrest.NewInventoryRepo(c),
		Queue:         postgrest.NewQueueRepo(c),
	}
}
