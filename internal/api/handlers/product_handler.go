package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"trendx-service/internal/models"
	"trendx-service/internal/validation"

	"github.com/go-chi/chi/v5"
)

type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, in validation.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	svc    ProductService
	logger *slog.Logger
}

func NewProductHandler(svc ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, logger: httpLogger(logger)}
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.logger, "list_products", err, "", "failed to get products")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"products": products})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.ProductInput
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(r.Context(), w, h.logger, "create_product", err, "", "failed to create product")
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"product": p})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.logger, "delete_product", err, "Product not found", "failed to delete product")
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"message": "Product deleted"})
}
