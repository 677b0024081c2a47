package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"hospital-management/internal/middleware"
	"hospital-management/internal/platform/respond"
	"hospital-management/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /patients. history es opcional: lo arma el router
// porque agrega datos de otros dominios.
func RegisterRoutes(r chi.Router, svc *Service, history http.HandlerFunc) {
	r.Route("/patients", func(pr chi.Router) {
		// Alta: recepción
		pr.With(middleware.RequireRole(auth.RoleReception)).Post("/", registerPatientHandler(svc))

		pr.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireRole(auth.RoleReception, auth.RoleDoctor, auth.RoleNurse))
			gr.Get("/", listPatientsHandler(svc))
			gr.Get("/{patientID}", getPatientHandler(svc))
			if history != nil {
				gr.Get("/{patientID}/history", history)
			}
		})
	})
}

type registerPatientRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"` // YYYY-MM-DD opcional
	Gender           string `json:"gender"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	BloodType        string `json:"blood_type"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Allergies        string `json:"allergies"`
	MedicalHistory   string `json:"medical_history"`
}

type PatientResponse struct {
	ID               string     `json:"id"`
	PatientID        string     `json:"patient_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           string     `json:"gender"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	BloodType        string     `json:"blood_type"`
	EmergencyContact string     `json:"emergency_contact"`
	EmergencyPhone   string     `json:"emergency_phone"`
	Allergies        string     `json:"allergies"`
	MedicalHistory   string     `json:"medical_history"`
	CreatedAt        time.Time  `json:"created_at"`
}

// registerPatientHandler godoc
// @Summary Registrar paciente
// @Description Alta de paciente en recepción. Genera el número de paciente visible (`patient_id`). Rol requerido: `reception`.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body registerPatientRequest true "Datos del paciente; date_of_birth en formato YYYY-MM-DD"
// @Success 201 {object} PatientResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to create patient"
// @Router /patients [post]
func registerPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		var dob *time.Time
		if strings.TrimSpace(req.DateOfBirth) != "" {
			t, err := time.Parse("2006-01-02", req.DateOfBirth)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
				return
			}
			dob = &t
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			DateOfBirth:      dob,
			Gender:           req.Gender,
			Email:            req.Email,
			Phone:            req.Phone,
			Address:          req.Address,
			BloodType:        req.BloodType,
			EmergencyContact: req.EmergencyContact,
			EmergencyPhone:   req.EmergencyPhone,
			Allergies:        req.Allergies,
			MedicalHistory:   req.MedicalHistory,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "first_name and last_name are required")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to create patient")
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(p))
	}
}

// listPatientsHandler godoc
// @Summary Buscar pacientes
// @Description Sin filtros lista todos. `phone` tiene prioridad sobre `patientId`.
// @Tags patients
// @Produce json
// @Param phone query string false "Teléfono exacto"
// @Param patientId query string false "Número de paciente (P...)"
// @Success 200 {array} PatientResponse
// @Failure 500 {object} map[string]string "Failed to fetch patients"
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			Phone:         r.URL.Query().Get("phone"),
			PatientNumber: r.URL.Query().Get("patientId"),
		})
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch patients")
			return
		}

		out := make([]PatientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags patients
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} PatientResponse
// @Failure 404 {object} map[string]string "patient not found"
// @Failure 500 {object} map[string]string "Failed to fetch patients"
// @Router /patients/{patientID} [get]
func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "patient not found")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch patients")
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(p))
	}
}

// ToResponse se exporta para que el historial reutilice el mismo formato.
func ToResponse(p Patient) PatientResponse {
	return PatientResponse{
		ID:               p.ID,
		PatientID:        p.PatientNumber,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		DateOfBirth:      p.DateOfBirth,
		Gender:           p.Gender,
		Email:            p.Email,
		Phone:            p.Phone,
		Address:          p.Address,
		BloodType:        p.BloodType,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Allergies:        p.Allergies,
		MedicalHistory:   p.MedicalHistory,
		CreatedAt:        p.CreatedAt,
	}
}
