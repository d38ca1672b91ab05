package order

import (
	"errors"
	"fmt"

	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrServiceNameIsRequired is returned when an item has no service name.
	ErrServiceNameIsRequired = errs.NewValueIsRequiredError("service name")
)

// Item is one add-on service line on an order: a named service with a
// quantity and a unit price. The line subtotal is Price * Quantity.
//
// Item is an immutable value object created via NewItem.
type Item struct { //nolint:recvcheck //using for validation
	serviceName string
	quantity    int
	price       float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order item.
// The service name must be non-empty, quantity at least 1 and unit price
// non-negative.
func NewItem(serviceName string, quantity int, price float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setServiceName(serviceName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ServiceName returns the name of the add-on service.
func (i Item) ServiceName() string {
	return i.serviceName
}

// Quantity returns how many units of the service were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price of the service.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns the line total: unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setServiceName(serviceName string) error {
	if serviceName == "" {
		return ErrServiceNameIsRequired
	}
	i.serviceName = serviceName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}
