package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"
	"trendx-service/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProducts struct{ mock.Mock }

func (m *mockProducts) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProducts) Create(ctx context.Context, in validation.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProducts) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) List(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrders) Create(ctx context.Context, in validation.OrderInput) (*models.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *mockOrders) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockDashboard struct{ mock.Mock }

func (m *mockDashboard) Stats(ctx context.Context) (models.DashboardStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(models.DashboardStats)
	return stats, args.Error(1)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// withURLParam routes the request through chi so URL params resolve.
func withURLParam(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	return r
}

func TestProductHandler_GetAll(t *testing.T) {
	svc := new(mockProducts)
	svc.On("List", mock.Anything).Return([]models.Product{
		{ID: "p1", Name: "Tee", Price: decimal.RequireFromString("19.99"), Quantity: 2},
	}, nil)

	rec := httptest.NewRecorder()
	NewProductHandler(svc, nil).GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	products := body["products"].([]any)
	require.Len(t, products, 1)

	p := products[0].(map[string]any)
	assert.Equal(t, "p1", p["_id"])
	assert.Equal(t, 19.99, p["price"])
	svc.AssertExpectations(t)
}

func TestProductHandler_GetAllStoreFailure(t *testing.T) {
	svc := new(mockProducts)
	svc.On("List", mock.Anything).Return(nil, &repository.StoreError{Op: "list products", Err: errors.New("socket closed")})

	rec := httptest.NewRecorder()
	NewProductHandler(svc, nil).GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "failed to get products", body["error"])
	assert.NotContains(t, rec.Body.String(), "socket closed")
}

func TestProductHandler_Create(t *testing.T) {
	svc := new(mockProducts)
	price := decimal.RequireFromString("20")
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in validation.ProductInput) bool {
		return in.Name == "Tee" && in.Price != nil && in.Price.Equal(price)
	})).Return(&models.Product{ID: "p1", Name: "Tee", Category: "T-Shirts", Price: price, Quantity: 5}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products",
		strings.NewReader(`{"name":"Tee","category":"T-Shirts","price":20,"quantity":5,"unknown":"ignored"}`))
	rec := httptest.NewRecorder()
	NewProductHandler(svc, nil).Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "p1", body["product"].(map[string]any)["_id"])
	svc.AssertExpectations(t)
}

func TestProductHandler_CreateValidationError(t *testing.T) {
	svc := new(mockProducts)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, &validation.ValidationError{
		Fields:  []string{"price"},
		Message: "Name, category, and price are required",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Tee","category":"T-Shirts"}`))
	rec := httptest.NewRecorder()
	NewProductHandler(svc, nil).Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, category, and price are required", decodeBody(t, rec)["error"])
}

func TestProductHandler_CreateBadJSON(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"name":`,
		"trailing data": `{"name":"Tee"} {"name":"Cap"}`,
		"not an object": `[1,2]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			svc := new(mockProducts)

			rec := httptest.NewRecorder()
			NewProductHandler(svc, nil).Create(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid JSON body", decodeBody(t, rec)["error"])
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductHandler_CreateBodyTooLarge(t *testing.T) {
	svc := new(mockProducts)
	payload := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`

	rec := httptest.NewRecorder()
	NewProductHandler(svc, nil).Create(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "deleted", status: http.StatusOK, message: "Product deleted"},
		{name: "missing", err: repository.ErrNotFound, status: http.StatusNotFound, message: "Product not found"},
		{
			name:    "malformed id",
			err:     &repository.StoreError{Op: "delete product", Err: repository.ErrInvalidID},
			status:  http.StatusInternalServerError,
			message: "failed to delete product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockProducts)
			svc.On("Delete", mock.Anything, "abc").Return(tt.err)

			h := withURLParam(http.MethodDelete, "/api/products/{id}", NewProductHandler(svc, nil).Delete)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/abc", nil))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.err == nil, body["success"])
			if tt.err == nil {
				assert.Equal(t, tt.message, body["message"])
			} else {
				assert.Equal(t, tt.message, body["error"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc := new(mockOrders)
		svc.On("UpdateStatus", mock.Anything, "o1", "Shipped").Return(nil)

		h := withURLParam(http.MethodPut, "/api/orders/{id}", NewOrderHandler(svc, nil).UpdateStatus)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{"status":"Shipped"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order updated", decodeBody(t, rec)["message"])
		svc.AssertExpectations(t)
	})

	t.Run("missing status passes through empty", func(t *testing.T) {
		svc := new(mockOrders)
		svc.On("UpdateStatus", mock.Anything, "o1", "").Return(nil)

		h := withURLParam(http.MethodPut, "/api/orders/{id}", NewOrderHandler(svc, nil).UpdateStatus)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockOrders)
		svc.On("UpdateStatus", mock.Anything, "o1", "Shipped").Return(repository.ErrNotFound)

		h := withURLParam(http.MethodPut, "/api/orders/{id}", NewOrderHandler(svc, nil).UpdateStatus)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{"status":"Shipped"}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", decodeBody(t, rec)["error"])
	})
}

func TestOrderHandler_GetAll(t *testing.T) {
	svc := new(mockOrders)
	svc.On("List", mock.Anything).Return([]models.Order{
		{ID: "o2", CustomerName: "Alice", Items: []string{"Tee"}, TotalPrice: decimal.RequireFromString("40.00")},
		{ID: "o1", CustomerName: "Bob", Items: []string{}},
	}, nil)

	rec := httptest.NewRecorder()
	NewOrderHandler(svc, nil).GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody(t, rec)["orders"].([]any)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].(map[string]any)["_id"])
	assert.Equal(t, float64(40), orders[0].(map[string]any)["total_price"])
	assert.Equal(t, []any{}, orders[1].(map[string]any)["items"])
}

func TestDashboardHandler_Get(t *testing.T) {
	svc := new(mockDashboard)
	svc.On("Stats", mock.Anything).Return(models.DashboardStats{
		TotalProducts:  3,
		TotalCustomers: 2,
		TotalOrders:    1,
		TotalRevenue:   decimal.RequireFromString("40.00"),
		InventoryValue: decimal.RequireFromString("100.50"),
	}, nil)

	rec := httptest.NewRecorder()
	NewDashboardHandler(svc, nil).Get(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, map[string]any{
		"success":         true,
		"total_products":  float64(3),
		"total_customers": float64(2),
		"total_orders":    float64(1),
		"total_revenue":   float64(40),
		"inventory_value": 100.5,
	}, body)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "error": "Server error"}, decodeBody(t, rec))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	})
}
