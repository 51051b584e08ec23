package order

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultStatus is the status every order starts in. Creation forces it
// regardless of anything the caller supplied.
const DefaultStatus = "Pending"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIDAlreadyAssigned is returned when SetID is called on an order that
	// already carries a persistent identifier. Identifiers are immutable.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned and cannot change")
)

// Order is the persisted order aggregate. It maintains these invariants:
//   - id is non-zero if and only if the order has been persisted
//   - orderDate is stamped once at creation and never recomputed
//   - status is never empty after construction; creation forces DefaultStatus
//   - totalAmount is strictly positive
//
// Fields are private; state changes go through validated methods.
type Order struct {
	// id is assigned by the store on first save; zero means not yet persisted.
	id int64

	customerName string

	// orderDate is the creation instant.
	orderDate time.Time

	// status is a free-form label. The only system-enforced transition is the
	// forced DefaultStatus at creation; callers may set any non-empty value
	// afterwards via Update.
	status string

	totalAmount decimal.Decimal

	isConstructed bool
}

// NewOrder creates a not-yet-persisted order for the given customer and
// amount. It stamps orderDate with the current instant and forces status to
// DefaultStatus. The identifier is left unassigned for the store.
func NewOrder(customerName string, totalAmount decimal.Decimal) (*Order, error) {
	o := &Order{
		orderDate:     time.Now(),
		status:        DefaultStatus,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted order from storage. Unlike NewOrder
// it accepts the stored orderDate and status verbatim and requires an
// assigned identifier.
func RestoreOrder(
	id int64,
	customerName string,
	orderDate time.Time,
	status string,
	totalAmount decimal.Decimal,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setPersistentID(id),
		o.setCustomerName(customerName),
		o.setOrderDate(orderDate),
		o.setStatus(status),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when an order crosses a trust boundary, e.g. before
// persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// IsPersisted reports whether the order has been saved at least once.
func (o *Order) IsPersisted() bool {
	return o.id != 0
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderDate returns the creation instant.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status label.
func (o *Order) Status() string {
	return o.status
}

// TotalAmount returns the total cost of the order.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// SetID assigns the identifier chosen by the store. It may be called exactly
// once; the identifier is immutable afterwards.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid persistent identifier", id))
	}

	o.id = id
	return nil
}

// Update replaces the customer name, status and total amount wholesale. This
// is whole-record field replacement, not a merge: callers resupply every
// field. The identifier and orderDate are never touched. On validation
// failure the order is left unchanged.
func (o *Order) Update(customerName, status string, totalAmount decimal.Decimal) error {
	if err := errors.Join(
		validateCustomerName(customerName),
		validateStatus(status),
		validateTotalAmount(totalAmount),
	); err != nil {
		return err
	}

	o.customerName = customerName
	o.status = status
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPersistentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid persistent identifier", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if err := validateCustomerName(customerName); err != nil {
		return err
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setStatus(status string) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if err := validateTotalAmount(totalAmount); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	return nil
}

func validateCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	return nil
}

func validateStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func validateTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is not greater than 0", totalAmount))
	}
	return nil
}
