package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"trendx-service/internal/models"
	"trendx-service/internal/validation"

	"github.com/go-chi/chi/v5"
)

type OrderService interface {
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, in validation.OrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type OrderHandler struct {
	svc    OrderService
	logger *slog.Logger
}

func NewOrderHandler(svc OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, logger: httpLogger(logger)}
}

func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.logger, "list_orders", err, "", "failed to get orders")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"orders": orders})
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.OrderInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	o, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(r.Context(), w, h.logger, "create_order", err, "", "failed to create order")
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"order": o})
}

// UpdateStatus changes only the status. A missing or empty status resets the
// order to Pending.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req validation.StatusInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondError(r.Context(), w, h.logger, "update_order_status", err, "Order not found", "failed to update order")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"message": "Order updated"})
}
