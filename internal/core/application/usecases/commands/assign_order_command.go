package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
)

// AssignOrderCommand represents an administrative order update: assigning or
// reassigning the cleaner, forcing a status, or both. Either field may be nil
// to leave it unchanged, but not both at once.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	cleanerID *int64
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command for an administrative order update.
// At least one of cleanerID and status must be provided.
func NewAssignOrderCommand(orderID int64, cleanerID *int64, status *order.Status) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setPatch(cleanerID, status),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c AssignOrderCommand) OrderID() int64 {
	return c.orderID
}

// CleanerID returns the cleaner to assign, or nil to leave the assignment unchanged.
func (c AssignOrderCommand) CleanerID() *int64 {
	return c.cleanerID
}

// Status returns the status to force, or nil to leave the status unchanged.
func (c AssignOrderCommand) Status() *order.Status {
	return c.status
}

func (c *AssignOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setPatch(cleanerID *int64, status *order.Status) error {
	if cleanerID == nil && status == nil {
		return errs.NewValueIsRequiredError("cleanerID or status")
	}

	if cleanerID != nil && *cleanerID <= 0 {
		return errs.NewValueIsInvalidError("cleanerID")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.cleanerID = cleanerID
	c.status = status
	return nil
}
