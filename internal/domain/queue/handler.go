package queue

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
	r.Route("/queue", func(qr chi.Router) {
		qr.Use(middleware.RequireRole(auth.RoleReception, auth.RoleNurse, auth.RoleDoctor))

		qr.Post("/", enqueueHandler(svc))
		qr.Get("/", waitingHandler(svc))
		qr.Get("/stats", statsHandler(svc))
		qr.Patch("/{entryID}", updateStatusHandler(svc))
	})
}

type enqueueRequest struct {
	PatientID string `json:"patient_id"`
	QueueType string `json:"queue_type"`
	Position  int    `json:"position"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	QueueType string    `json:"queue_type"`
	Status    Status    `json:"status"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// enqueueHandler godoc
// @Summary Agregar paciente a la cola
// @Description Sin `position` se asigna la siguiente de esa cola.
// @Tags queue
// @Accept json
// @Produce json
// @Param payload body enqueueRequest true "Turno"
// @Success 201 {object} entryResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to add to queue"
// @Router /queue [post]
func enqueueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enqueueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Enqueue(r.Context(), EnqueueInput{
			PatientID: req.PatientID,
			QueueType: req.QueueType,
			Position:  req.Position,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "patient_id and queue_type are required")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to add to queue")
			return
		}
		respond.JSON(w, http.StatusCreated, toResponse(e))
	}
}

// waitingHandler godoc
// @Summary Turnos en espera
// @Tags queue
// @Produce json
// @Param queueType query string false "Tipo de cola"
// @Success 200 {array} entryResponse
// @Failure 500 {object} map[string]string "Failed to fetch queue"
// @Router /queue [get]
func waitingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Waiting(r.Context(), r.URL.Query().Get("queueType"))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch queue")
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toResponse(e))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// statsHandler godoc
// @Summary Contadores de la cola
// @Tags queue
// @Produce json
// @Param queueType query string false "Tipo de cola"
// @Success 200 {object} Stats
// @Failure 500 {object} map[string]string "Failed to fetch queue"
// @Router /queue/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context(), r.URL.Query().Get("queueType"))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch queue")
			return
		}
		respond.JSON(w, http.StatusOK, st)
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de un turno
// @Tags queue
// @Accept json
// @Produce json
// @Param entryID path string true "ID del turno"
// @Param payload body updateStatusRequest true "waiting | in-progress | completed"
// @Success 200 {object} entryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to update queue"
// @Router /queue/{entryID} [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "entryID"), Status(strings.ToLower(strings.TrimSpace(req.Status))))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus):
				respond.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, err.Error())
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to update queue")
			}
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(e))
	}
}

func toResponse(e Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		PatientID: e.PatientID,
		QueueType: e.QueueType,
		Status:    e.Status,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
