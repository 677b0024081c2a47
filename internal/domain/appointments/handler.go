package appointments

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
	r.Route("/appointments", func(ar chi.Router) {
		ar.Use(middleware.RequireRole(auth.RoleReception, auth.RoleDoctor))

		ar.Post("/", scheduleHandler(svc))
		ar.Get("/", listHandler(svc))
		ar.Patch("/{appointmentID}", updateStatusHandler(svc))
	})
}

type scheduleRequest struct {
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"` // RFC3339 o YYYY-MM-DDTHH:MM
	Reason          string `json:"reason"`
	Status          string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// scheduleHandler godoc
// @Summary Agendar cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body scheduleRequest true "Cita"
// @Success 201 {object} AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to create appointment"
// @Router /appointments [post]
func scheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		when, err := parseAppointmentDate(req.AppointmentDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "appointment_date must be RFC3339 or YYYY-MM-DDTHH:MM")
			return
		}

		// doctor por defecto: quien agenda si es médico
		doctorID := req.DoctorID
		if claims, ok := middleware.GetClaims(r.Context()); ok && doctorID == "" && claims.Role == auth.RoleDoctor {
			doctorID = claims.UserID
		}

		a, err := svc.Schedule(r.Context(), ScheduleInput{
			PatientID:       req.PatientID,
			DoctorID:        doctorID,
			AppointmentDate: when,
			Reason:          req.Reason,
			Status:          Status(strings.ToLower(strings.TrimSpace(req.Status))),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "patient_id and appointment_date are required")
			case errors.Is(err, ErrInvalidStatus):
				respond.Error(w, http.StatusBadRequest, err.Error())
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to create appointment")
			}
			return
		}

		respond.JSON(w, http.StatusCreated, toResponse(a))
	}
}

// listHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Param patientId query string false "ID del paciente"
// @Success 200 {array} AppointmentResponse
// @Failure 500 {object} map[string]string "Failed to fetch appointments"
// @Router /appointments [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("patientId"))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch appointments")
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de una cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body updateStatusRequest true "scheduled | completed | cancelled | no-show"
// @Success 200 {object} AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{appointmentID} [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), Status(strings.ToLower(strings.TrimSpace(req.Status))))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus):
				respond.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, err.Error())
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to update appointment")
			}
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(a))
	}
}

func parseAppointmentDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", v)
}

func toResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		Reason:          a.Reason,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}

func ToResponses(items []Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}
