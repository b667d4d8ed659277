package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"trendx-service/internal/models"
	"trendx-service/internal/validation"
)

type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, in validation.CustomerInput) (*models.Customer, error)
}

type CustomerHandler struct {
	svc    CustomerService
	logger *slog.Logger
}

func NewCustomerHandler(svc CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, logger: httpLogger(logger)}
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.logger, "list_customers", err, "", "failed to get customers")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"customers": customers})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.CustomerInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(r.Context(), w, h.logger, "create_customer", err, "", "failed to create customer")
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"customer": c})
}
