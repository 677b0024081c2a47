package history

import (
	"errors"
	"net/http"

	"hospital-management/internal/domain/appointments"
	"hospital-management/internal/domain/consultations"
	"hospital-management/internal/domain/patients"
	"hospital-management/internal/domain/prescriptions"
	"hospital-management/internal/domain/vitals"
	"hospital-management/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type historyResponse struct {
	Patient       patients.PatientResponse             `json:"patient"`
	Vitals        []vitals.VitalsResponse              `json:"vitals"`
	Prescriptions []prescriptions.PrescriptionResponse `json:"prescriptions"`
	Consultations []consultations.ConsultationResponse `json:"consultations"`
	Appointments  []appointments.AppointmentResponse   `json:"appointments"`
}

// Handler godoc
// @Summary Historial del paciente
// @Description Ficha con signos vitales (clasificados), recetas, consultas y citas. Se monta bajo /patients con sus mismos roles.
// @Tags patients
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} historyResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to fetch patient history"
// @Router /patients/{patientID}/history [get]
func Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.Get(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			switch {
			case errors.Is(err, patients.ErrNotFound):
				respond.Error(w, http.StatusNotFound, "patient not found")
			case errors.Is(err, patients.ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "patient id is required")
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to fetch patient history")
			}
			return
		}

		respond.JSON(w, http.StatusOK, historyResponse{
			Patient:       patients.ToResponse(h.Patient),
			Vitals:        vitals.ToResponses(h.Vitals),
			Prescriptions: prescriptions.ToResponses(h.Prescriptions),
			Consultations: consultations.ToResponses(h.Consultations),
			Appointments:  appointments.ToResponses(h.Appointments),
		})
	}
}
