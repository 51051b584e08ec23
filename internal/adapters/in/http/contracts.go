package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Amounts are serialized as JSON numbers, not quoted strings, matching the
// documented wire contract.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateOrderRequest is the payload for POST /api/orders. The caller supplies
// only the customer name and the total amount; status and order date are
// server-assigned.
type CreateOrderRequest struct {
	CustomerName string          `json:"customerName" validate:"required"`
	TotalAmount  decimal.Decimal `json:"totalAmount" validate:"gt=0"`
}

// UpdateOrderRequest is the payload for PUT /api/orders/{id}. Every field is
// mandatory: the update replaces the record's mutable fields wholesale.
type UpdateOrderRequest struct {
	CustomerName string          `json:"customerName" validate:"required"`
	Status       string          `json:"status" validate:"required"`
	TotalAmount  decimal.Decimal `json:"totalAmount" validate:"gt=0"`
}

// OrderResponse is the read-only projection of an order returned to callers.
type OrderResponse struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customerName"`
	OrderDate    time.Time       `json:"orderDate"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

func orderToResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		OrderDate:    o.OrderDate(),
		Status:       o.Status(),
		TotalAmount:  o.TotalAmount(),
	}
}

func queryToResponse(q queries.OrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:           q.ID,
		CustomerName: q.CustomerName,
		OrderDate:    q.OrderDate,
		Status:       q.Status,
		TotalAmount:  q.TotalAmount,
	}
}

// NewValidator configures a validator for the request contracts: fields are
// reported under their json names, and decimal amounts are compared as
// numbers so numeric tags like gt apply to them.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// validationMessages collapses every failing field into one field→message
// map. All failures are reported together, never one at a time.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		messages["request"] = err.Error()
		return messages
	}

	for _, fe := range fieldErrors {
		messages[fe.Field()] = messageFor(fe)
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "customerName":
		return "Customer name cannot be empty."
	case "status":
		return "Status cannot be empty."
	case "totalAmount":
		return "Total amount must be a positive number."
	}
	return "Invalid value."
}
