package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a cleaner moving their assigned order one
// step forward along the lifecycle: accepted, going, started, finished.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	cleanerID int64
	target    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
// The target must be a known status; whether it is a legal next step for the
// particular order is decided by the aggregate when the command is handled.
func NewAdvanceOrderCommand(orderID int64, cleanerID int64, target order.Status) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setCleanerID(cleanerID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() int64 {
	return c.orderID
}

// CleanerID returns the identifier of the acting cleaner.
func (c AdvanceOrderCommand) CleanerID() int64 {
	return c.cleanerID
}

// Target returns the requested status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setCleanerID(cleanerID int64) error {
	if cleanerID <= 0 {
		return errs.NewValueIsInvalidError("cleanerID")
	}

	c.cleanerID = cleanerID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
