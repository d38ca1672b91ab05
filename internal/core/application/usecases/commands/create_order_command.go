package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to book a cleaning.
// Carries the validated order details and the selected add-on service items;
// the price is computed server side when the command is handled.
//
// Example:
//
//	details, _ := order.NewDetails("Apartment", 2, 1, "deep", "15 Abay Ave", "42", "Almaty", "+77010000000", nil)
//	item, _ := order.NewItem("Oven cleaning", 1, 4500)
//	cmd, err := NewCreateOrderCommand(customerID, details, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	details    order.Details
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book a new cleaning order.
// Validates that the customer id is positive, the details were constructed
// properly, and at least one service item is present.
func NewCreateOrderCommand(customerID int64, details order.Details, items []order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setDetails(details),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the booking customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Details returns the order details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Items returns the selected add-on service items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
