package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hospital-management/internal/middleware"
	"hospital-management/internal/platform/respond"
	"hospital-management/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/inventory", func(ir chi.Router) {
		ir.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireRole(auth.RolePharmacy, auth.RoleLogistics))
			gr.Get("/", listHandler(svc))
			gr.Get("/low-stock", lowStockHandler(svc))
		})

		ir.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireRole(auth.RolePharmacy))
			gr.Post("/", createHandler(svc))
			gr.Put("/{itemID}", updateHandler(svc))
		})
	})
}

// createRequest: price acepta número o string ("12.50").
type createRequest struct {
	MedicationName string           `json:"medication_name"`
	Unit           string           `json:"unit"`
	Quantity       int              `json:"quantity"`
	ReorderLevel   int              `json:"reorder_level"`
	Supplier       string           `json:"supplier"`
	Price          *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
}

type updateRequest struct {
	MedicationName *string          `json:"medication_name"`
	Unit           *string          `json:"unit"`
	Quantity       *int             `json:"quantity"`
	ReorderLevel   *int             `json:"reorder_level"`
	Supplier       *string          `json:"supplier"`
	Price          *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
}

type itemResponse struct {
	ID             string          `json:"id"`
	MedicationName string          `json:"medication_name"`
	Unit           string          `json:"unit"`
	Quantity       int             `json:"quantity"`
	ReorderLevel   int             `json:"reorder_level"`
	Supplier       string          `json:"supplier"`
	Price          decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	LowStock       bool            `json:"low_stock"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// createHandler godoc
// @Summary Alta de medicamento en inventario
// @Tags inventory
// @Accept json
// @Produce json
// @Param payload body createRequest true "Ítem"
// @Success 201 {object} itemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to create inventory item"
// @Router /inventory [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		price := decimal.Zero
		if req.Price != nil {
			price = *req.Price
		}

		it, err := svc.Create(r.Context(), CreateInput{
			MedicationName: req.MedicationName,
			Unit:           req.Unit,
			Quantity:       req.Quantity,
			ReorderLevel:   req.ReorderLevel,
			Supplier:       req.Supplier,
			Price:          price,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "medication_name is required; quantity, reorder_level and price must not be negative")
				return
			}
			respond.Error(w, http.StatusInternalServerError, "Failed to create inventory item")
			return
		}
		respond.JSON(w, http.StatusCreated, toResponse(it))
	}
}

// listHandler godoc
// @Summary Listar inventario
// @Description Cada fila indica `low_stock` (quantity <= reorder_level).
// @Tags inventory
// @Produce json
// @Success 200 {array} itemResponse
// @Failure 500 {object} map[string]string "Failed to fetch inventory"
// @Router /inventory [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch inventory")
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items))
	}
}

// lowStockHandler godoc
// @Summary Medicamentos con stock bajo
// @Tags inventory
// @Produce json
// @Success 200 {array} itemResponse
// @Failure 500 {object} map[string]string "Failed to fetch inventory"
// @Router /inventory/low-stock [get]
func lowStockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.LowStock(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "Failed to fetch inventory")
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items))
	}
}

// updateHandler godoc
// @Summary Actualizar ítem de inventario
// @Description Actualización parcial: solo se modifican los campos enviados.
// @Tags inventory
// @Accept json
// @Produce json
// @Param itemID path string true "ID del ítem"
// @Param payload body updateRequest true "Campos a modificar"
// @Success 200 {object} itemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to update inventory"
// @Router /inventory/{itemID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		it, err := svc.Update(r.Context(), chi.URLParam(r, "itemID"), Patch{
			MedicationName: req.MedicationName,
			Unit:           req.Unit,
			Quantity:       req.Quantity,
			ReorderLevel:   req.ReorderLevel,
			Supplier:       req.Supplier,
			Price:          req.Price,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, err.Error())
			default:
				respond.Error(w, http.StatusInternalServerError, "Failed to update inventory")
			}
			return
		}
		respond.JSON(w, http.StatusOK, toResponse(it))
	}
}

func toResponse(it Item) itemResponse {
	return itemResponse{
		ID:             it.ID,
		MedicationName: it.MedicationName,
		Unit:           it.Unit,
		Quantity:       it.Quantity,
		ReorderLevel:   it.ReorderLevel,
		Supplier:       it.Supplier,
		Price:          it.Price,
		LowStock:       it.IsLowStock(),
		LastUpdated:    it.LastUpdated,
	}
}

func toResponses(items []Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toResponse(it))
	}
	return out
}
