package router

import (
	"net/http"

	_ "hospital-management/internal/docs"
	"hospital-management/internal/domain/appointments"
	"hospital-management/internal/domain/consultations"
	"hospital-management/internal/domain/history"
	"hospital-management/internal/domain/inventory"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/prescriptions"
	"hospital-management/internal/domain/queue"
	"hospital-management/internal/domain/vitals"
	"hospital-management/internal/middleware"
	"hospital-management/internal/platform/logger"
	"hospital-management/internal/platform/metrics"
	"hospital-management/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, in-memory.
	Repos *Repositories

	// Tabla de umbrales de signos vitales; nil => valores por defecto.
	Thresholds vitals.Thresholds

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("hospital-management")
	}
	repos := opts.Repos
	if repos == nil {
		repos = MemoryRepositories()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	vitalsOpts := []vitals.Option{vitals.WithObserver(m)}
	if opts.Thresholds != nil {
		vitalsOpts = append(vitalsOpts, vitals.WithClassifier(vitals.NewClassifier(opts.Thresholds)))
	}
	vitalsSvc := vitals.NewService(repos.Vitals, vitalsOpts...)
	patientsSvc := patients.NewService(repos.Patients)
	appointmentsSvc := appointments.NewService(repos.Appointments)
	consultationsSvc := consultations.NewService(repos.Consultations)
	prescriptionsSvc := prescriptions.NewService(repos.Prescriptions)
	inventorySvc := inventory.NewService(repos.Inventory)
	queueSvc := queue.NewService(repos.Queue)

	historySvc := history.NewService(patientsSvc, vitalsSvc, prescriptionsSvc, consultationsSvc, appointmentsSvc)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, history.Handler(historySvc))
	vitals.RegisterRoutes(r, vitalsSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)
	consultations.RegisterRoutes(r, consultationsSvc)
	prescriptions.RegisterRoutes(r, prescriptionsSvc)
	inventory.RegisterRoutes(r, inventorySvc)
	queue.RegisterRoutes(r, queueSvc)

	return r
}
