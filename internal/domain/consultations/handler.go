package consultations

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

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultations", func(cr chi.Router) {
		cr.Use(middleware.RequireRole(auth.RoleDoctor))

		cr.Post("/", createHandler(svc))
		cr.Get("/", listHandler(svc))
	})
}

type createRequest struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
	Diagnosis     string `json:"diagnosis"`
	Symptoms      string `json:"symptoms"`
	TreatmentPlan string `json:"treatment_plan"`
	Notes         string `json:"notes"`
}

type ConsultationResponse struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	AppointmentID    string    `json:"appointment_id,omitempty"`
	Diagnosis        string    `json:"diagnosis"`
	Symptoms         string    `json:"symptoms"`
	TreatmentPlan    string    `json:"treatment_plan"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	ConsultationDate time.Time `json:"consultation_date"`
}

// createHandler godoc
// @Summary Registrar consulta
// @Description El médico autenticado queda como doctor_id. El estado siempre es `completed`.
// @Tags consultations
// @Accept json
// @Produce json
// @Param payload body createRequest true "Consulta"
// @Success 201 {object} ConsultationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to create consultation"
// @Router /consultations [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.Diagnosis) == "" {
			respond.Error(w, http.StatusBadRequest, "diagnosis is required")
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			PatientID:     req.PatientID,
			DoctorID:      claims.UserID,
			AppointmentID: req.AppointmentID,
			Diagnosis:     req.Diagnosis,
			Symptoms:      req.Symptoms,
			TreatmentPlan: req.TreatmentPlan,
			Notes:         req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "patient_id is required")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to create consultation")
			return
		}
		respond.JSON(w, http.StatusCreated, toResponse(c))
	}
}

// listHandler godoc
// @Summary Listar consultas
// @Tags consultations
// @Produce json
// @Param patientId query string false "ID del paciente"
// @Success 200 {array} ConsultationResponse
// @Failure 500 {object} map[string]string "Failed to fetch consultations"
// @Router /consultations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("patientId"))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch consultations")
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

func toResponse(c Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:               c.ID,
		PatientID:        c.PatientID,
		DoctorID:         c.DoctorID,
		AppointmentID:    c.AppointmentID,
		Diagnosis:        c.Diagnosis,
		Symptoms:         c.Symptoms,
		TreatmentPlan:    c.TreatmentPlan,
		Notes:            c.Notes,
		Status:           c.Status,
		ConsultationDate: c.ConsultationDate,
	}
}

func ToResponses(items []Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toResponse(c))
	}
	return out
}
