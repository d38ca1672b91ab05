package commands

import (
	"errors"

	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a cleaner's request to take an unassigned order.
// Claiming is first come first served; the handler enforces the one active
// order per cleaner rule.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	cleanerID int64

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a cleaner to claim an order.
// Both identifiers must be positive.
func NewClaimOrderCommand(orderID int64, cleanerID int64) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setOrderID(orderID),
		claimCommand.setCleanerID(cleanerID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c ClaimOrderCommand) OrderID() int64 {
	return c.orderID
}

// CleanerID returns the identifier of the claiming cleaner.
func (c ClaimOrderCommand) CleanerID() int64 {
	return c.cleanerID
}

func (c *ClaimOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setCleanerID(cleanerID int64) error {
	if cleanerID <= 0 {
		return errs.NewValueIsInvalidError("cleanerID")
	}

	c.cleanerID = cleanerID
	return nil
}
