// Package orderrepo provides the data transfer object and mapping functions
// for order persistence, converting between the order aggregate and its
// relational representation.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate. The primary
// key is assigned by the database sequence on insert; the amount column is
// numeric so decimal values survive the round trip without float rounding.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName string          `gorm:"not null"`
	OrderDate    time.Time       `gorm:"not null"`
	Status       string          `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName overrides GORM's naming convention; "order" is a reserved SQL
// word, the table is "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		OrderDate:    o.OrderDate(),
		Status:       o.Status(),
		TotalAmount:  o.TotalAmount(),
	}
}

// toDomain reconstructs an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.CustomerName, dto.OrderDate, dto.Status, dto.TotalAmount)
}
