package prescriptions

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
	r.Route("/prescriptions", func(pr chi.Router) {
		pr.With(middleware.RequireRole(auth.RoleDoctor)).Post("/", prescribeHandler(svc))

		pr.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireRole(auth.RoleDoctor, auth.RolePharmacy))
			gr.Get("/", listHandler(svc))
			gr.Patch("/{prescriptionID}", updateStatusHandler(svc))
		})
	})
}

type prescribeRequest struct {
	PatientID      string `json:"patient_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Quantity       int    `json:"quantity"`
	Instructions   string `json:"instructions"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type PrescriptionResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Quantity       int       `json:"quantity"`
	Instructions   string    `json:"instructions"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// prescribeHandler godoc
// @Summary Emitir receta
// @Description Crea la receta en estado `pending`. quantity por defecto 1. Rol requerido: `doctor`.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param payload body prescribeRequest true "Receta"
// @Success 201 {object} PrescriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to create prescription"
// @Router /prescriptions [post]
func prescribeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req prescribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Prescribe(r.Context(), PrescribeInput{
			PatientID:      req.PatientID,
			DoctorID:       claims.UserID,
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			Duration:       req.Duration,
			Quantity:       req.Quantity,
			Instructions:   req.Instructions,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "patient_id, medication_name and dosage are required")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to create prescription")
			return
		}
		respond.JSON(w, http.StatusCreated, toResponse(p))
	}
}

// listHandler godoc
// @Summary Listar recetas
// @Description Farmacia usa `status=pending` como cola de despacho.
// @Tags prescriptions
// @Produce json
// @Param patientId query string false "ID del paciente"
// @Param status query string false "pending | dispensed | cancelled"
// @Success 200 {array} PrescriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to fetch prescriptions"
// @Router /prescriptions [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			PatientID: r.URL.Query().Get("patientId"),
			Status:    Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidStatus) {
				respond.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch prescriptions")
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de receta
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param prescriptionID path string true "ID de la receta"
// @Param payload body updateStatusRequest true "pending | dispensed | cancelled"
// @Success 200 {object} PrescriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to update prescription"
// @Router /prescriptions/{prescriptionID} [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "prescriptionID"), Status(strings.ToLower(strings.TrimSpace(req.Status))))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus):
				respond.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, err.Error())
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to update prescription")
			}
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(p))
	}
}

func toResponse(p Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:             p.ID,
		PatientID:      p.PatientID,
		DoctorID:       p.DoctorID,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		Duration:       p.Duration,
		Quantity:       p.Quantity,
		Instructions:   p.Instructions,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToResponses(items []Prescription) []PrescriptionResponse {
	out := make([]PrescriptionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}
