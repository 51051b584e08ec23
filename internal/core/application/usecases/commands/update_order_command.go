package commands

import (
	"errors"

	"ordermanagement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order ID must be greater than 0")
	ErrStatusIsRequired = errors.New("status is required")
)

// UpdateOrderCommand represents a request to replace the mutable fields of an
// existing order. All three fields are mandatory; there is no partial-update
// semantics, so unchanged values must be resupplied by the caller.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	customerName string
	status       string
	totalAmount  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order wholesale.
// Validates the identifier, the non-empty name and status, and the positive
// amount. The status label itself is not checked against any enumeration.
func NewUpdateOrderCommand(
	orderID int64,
	customerName string,
	status string,
	totalAmount decimal.Decimal,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setStatus(status),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerName returns the replacement customer name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// Status returns the replacement status label.
func (c UpdateOrderCommand) Status() string {
	return c.status
}

// TotalAmount returns the replacement total amount.
func (c UpdateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}
