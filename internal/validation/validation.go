// Package validation turns inbound payloads into normalized records, or
// rejects them naming every missing or invalid field.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"trendx-service/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// MaxQuantity matches the INTEGER quantity column.
const MaxQuantity = math.MaxInt32

// ValidationError lists the offending JSON fields in declaration order.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ProductInput struct {
	Name        string           `json:"name" validate:"notblank"`
	Category    string           `json:"category" validate:"notblank"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Description string           `json:"description"`
	Size        string           `json:"size"`
	Color       string           `json:"color"`
}

type CustomerInput struct {
	Name    string `json:"name" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type OrderInput struct {
	CustomerName  string           `json:"customer_name" validate:"notblank"`
	Items         []string         `json:"items" validate:"required,min=1"`
	TotalPrice    *decimal.Decimal `json:"total_price" validate:"required"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"payment_method"`
}

type StatusInput struct {
	Status string `json:"status"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validation: register notblank: %v", err))
	}

	return v
}

func ValidateProduct(in ProductInput) (models.Product, error) {
	negative := negativeFields(field{"price", in.Price}, field{"quantity", in.Quantity})
	var tooLarge []string
	if in.Quantity != nil && in.Quantity.Truncate(0).GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		tooLarge = append(tooLarge, "quantity")
	}
	if err := check(in, negative, tooLarge, "Name, category, and price are required"); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       *in.Price,
		Description: in.Description,
		Size:        in.Size,
		Color:       in.Color,
	}
	if in.Quantity != nil {
		p.Quantity = int(in.Quantity.IntPart())
	}

	return p, nil
}

func ValidateCustomer(in CustomerInput) (models.Customer, error) {
	if err := check(in, nil, nil, "Name and phone are required"); err != nil {
		return models.Customer{}, err
	}

	return models.Customer{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   in.Email,
		Address: in.Address,
	}, nil
}

func ValidateOrder(in OrderInput) (models.Order, error) {
	negative := negativeFields(field{"total_price", in.TotalPrice})
	if err := check(in, negative, nil, "Customer name, items, and total price are required"); err != nil {
		return models.Order{}, err
	}

	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = models.PaymentCash
	}

	return models.Order{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		Items:         append([]string{}, in.Items...),
		TotalPrice:    *in.TotalPrice,
		Status:        NormalizeStatus(in.Status),
		PaymentMethod: payment,
	}, nil
}

// NormalizeStatus maps an empty status to Pending. Any other value is kept;
// the status set is open.
func NormalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.StatusPending
	}
	return status
}

type field struct {
	name  string
	value *decimal.Decimal
}

func negativeFields(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if f.value != nil && f.value.IsNegative() {
			names = append(names, f.name)
		}
	}
	return names
}

// check runs the struct rules and folds every failure, plus the out-of-range
// amounts found by the caller, into one ValidationError. A payload whose only
// problems are amounts gets a message naming them.
func check(in any, negative, tooLarge []string, summary string) error {
	var verrs validator.ValidationErrors
	if err := validate.Struct(in); err != nil && !errors.As(err, &verrs) {
		return &ValidationError{Message: err.Error()}
	}

	if len(verrs) == 0 && len(negative) == 0 && len(tooLarge) == 0 {
		return nil
	}

	verr := &ValidationError{Message: summary}
	for _, fe := range verrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	if len(verrs) == 0 {
		var msgs []string
		if len(negative) > 0 {
			msgs = append(msgs, strings.Join(negative, " and ")+" must not be negative")
		}
		if len(tooLarge) > 0 {
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %d", strings.Join(tooLarge, " and "), MaxQuantity))
		}
		verr.Message = strings.Join(msgs, "; ")
	}
	verr.Fields = append(verr.Fields, negative...)
	verr.Fields = append(verr.Fields, tooLarge...)

	return verr
}
