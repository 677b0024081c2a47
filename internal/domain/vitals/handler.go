package vitals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hospital-management/internal/middleware"
	"hospital-management/internal/platform/respond"
	"hospital-management/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vitals", func(vr chi.Router) {
		// Registro: solo enfermería
		vr.With(middleware.RequireRole(auth.RoleNurse)).Post("/", recordVitalsHandler(svc))

		vr.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireRole(auth.RoleNurse, auth.RoleDoctor))
			gr.Get("/", listVitalsHandler(svc))
			gr.Post("/classify", classifyHandler(svc))
			gr.Get("/monitoring", monitoringHandler(svc))
		})
	})
}

// readingRequest: punteros para distinguir "no enviado" de cero.
type readingRequest struct {
	Systolic         *int     `json:"systolic"`
	Diastolic        *int     `json:"diastolic"`
	HeartRate        *int     `json:"heart_rate"`
	Temperature      *float64 `json:"temperature"`
	OxygenSaturation *int     `json:"oxygen_saturation"`
}

// recordVitalsRequest es el formulario de registro de signos vitales.
type recordVitalsRequest struct {
	readingRequest

	PatientID       string   `json:"patient_id"`
	NurseID         string   `json:"nurse_id"` // opcional, por defecto el usuario autenticado
	RespiratoryRate *int     `json:"respiratory_rate"`
	Weight          *float64 `json:"weight"`
	Height          *float64 `json:"height"`
	Notes           string   `json:"notes"`
}

// VitalsResponse representa una lectura registrada con sus anomalías.
type VitalsResponse struct {
	ID                     string         `json:"id"`
	PatientID              string         `json:"patient_id"`
	NurseID                string         `json:"nurse_id"`
	BloodPressureSystolic  int            `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int            `json:"blood_pressure_diastolic"`
	HeartRate              int            `json:"heart_rate"`
	Temperature            float64        `json:"temperature"`
	OxygenSaturation       int            `json:"oxygen_saturation"`
	RespiratoryRate        int            `json:"respiratory_rate"`
	Weight                 *float64       `json:"weight,omitempty"`
	Height                 *float64       `json:"height,omitempty"`
	Notes                  string         `json:"notes"`
	RecordedAt             time.Time      `json:"recorded_at"`
	Anomalies              []AnomalyLabel `json:"anomalies"`
}

type classifyResponse struct {
	Anomalies []AnomalyLabel `json:"anomalies"`
}

type monitoredPatientResponse struct {
	PatientID  string         `json:"patient_id"`
	Condition  Condition      `json:"condition"`
	AlertCount int            `json:"alert_count"`
	Latest     VitalsResponse `json:"latest"`
}

func (req readingRequest) toReading() (Reading, bool) {
	if req.Systolic == nil || req.Diastolic == nil || req.HeartRate == nil ||
		req.Temperature == nil || req.OxygenSaturation == nil {
		return Reading{}, false
	}
	return Reading{
		SystolicPressure:  *req.Systolic,
		DiastolicPressure: *req.Diastolic,
		HeartRate:         *req.HeartRate,
		Temperature:       *req.Temperature,
		OxygenSaturation:  *req.OxygenSaturation,
	}, true
}

// recordVitalsHandler godoc
// @Summary Registrar signos vitales
// @Description Registra una lectura para un paciente. La lectura se clasifica antes de persistir y la respuesta incluye las anomalías detectadas. Todos los campos numéricos son obligatorios salvo peso y altura. Rol requerido: `nurse`.
// @Tags vitals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param X-Debug-Role header string false "Solo en modo dev, rol del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body recordVitalsRequest true "Lectura"
// @Success 201 {object} VitalsResponse
// @Failure 400 {object} map[string]string "invalid json / campos faltantes"
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 500 {object} map[string]string "Failed to record vitals"
// @Router /vitals [post]
func recordVitalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req recordVitalsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		reading, ok := req.toReading()
		if !ok || req.RespiratoryRate == nil {
			respond.Error(w, http.StatusBadRequest, "systolic, diastolic, heart_rate, temperature, oxygen_saturation and respiratory_rate are required")
			return
		}
		if strings.TrimSpace(req.PatientID) == "" {
			respond.Error(w, http.StatusBadRequest, "patient_id is required")
			return
		}

		nurseID := strings.TrimSpace(req.NurseID)
		if nurseID == "" {
			nurseID = claims.UserID
		}

		rec, err := svc.Record(r.Context(), RecordInput{
			PatientID:       req.PatientID,
			NurseID:         nurseID,
			Reading:         reading,
			RespiratoryRate: *req.RespiratoryRate,
			Weight:          req.Weight,
			Height:          req.Height,
			Notes:           req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to record vitals")
			return
		}

		respond.JSON(w, http.StatusCreated, toVitalsResponse(rec))
	}
}

// listVitalsHandler godoc
// @Summary Listar signos vitales
// @Description Lista lecturas, más recientes primero. Filtra por paciente con `patientId`. Roles: `nurse`, `doctor`.
// @Tags vitals
// @Produce json
// @Param patientId query string false "ID del paciente"
// @Param limit query int false "Máximo de lecturas (1-200). Por defecto 50"
// @Success 200 {array} VitalsResponse
// @Failure 500 {object} map[string]string "Failed to fetch vitals"
// @Router /vitals [get]
func listVitalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			PatientID: r.URL.Query().Get("patientId"),
			Limit:     parseLimit(r.URL.Query().Get("limit")),
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch vitals")
			return
		}

		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

// classifyHandler godoc
// @Summary Clasificar una lectura sin registrarla
// @Tags vitals
// @Accept json
// @Produce json
// @Param payload body readingRequest true "Lectura"
// @Success 200 {object} classifyResponse
// @Failure 400 {object} map[string]string
// @Router /vitals/classify [post]
func classifyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req readingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		reading, ok := req.toReading()
		if !ok {
			respond.Error(w, http.StatusBadRequest, "systolic, diastolic, heart_rate, temperature and oxygen_saturation are required")
			return
		}

		respond.JSON(w, http.StatusOK, classifyResponse{Anomalies: svc.Classify(reading)})
	}
}

// monitoringHandler godoc
// @Summary Tablero de monitoreo
// @Description Última lectura por paciente con su condición (`Stable` sin anomalías, `Critical` con al menos una).
// @Tags vitals
// @Produce json
// @Success 200 {array} monitoredPatientResponse
// @Failure 500 {object} map[string]string "Failed to fetch vitals"
// @Router /vitals/monitoring [get]
func monitoringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Monitoring(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch vitals")
			return
		}

		out := make([]monitoredPatientResponse, 0, len(items))
		for _, m := range items {
			out = append(out, monitoredPatientResponse{
				PatientID:  m.PatientID,
				Condition:  m.Condition,
				AlertCount: m.AlertCount,
				Latest:     toVitalsResponse(m.Latest),
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func parseLimit(v string) int {
	limit := 50
	if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
		limit = n
	}
	return limit
}

func toVitalsResponse(rec Record) VitalsResponse {
	anomalies := rec.Anomalies
	if anomalies == nil {
		anomalies = []AnomalyLabel{}
	}
	return VitalsResponse{
		ID:                     rec.ID,
		PatientID:              rec.PatientID,
		NurseID:                rec.NurseID,
		BloodPressureSystolic:  rec.Reading.SystolicPressure,
		BloodPressureDiastolic: rec.Reading.DiastolicPressure,
		HeartRate:              rec.Reading.HeartRate,
		Temperature:            rec.Reading.Temperature,
		OxygenSaturation:       rec.Reading.OxygenSaturation,
		RespiratoryRate:        rec.RespiratoryRate,
		Weight:                 rec.Weight,
		Height:                 rec.Height,
		Notes:                  rec.Notes,
		RecordedAt:             rec.RecordedAt,
		Anomalies:              anomalies,
	}
}

func ToResponses(items []Record) []VitalsResponse {
	out := make([]VitalsResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toVitalsResponse(rec))
	}
	return out
}
