package commands

import (
	"errors"

	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrSetCleanerAvailabilityCommandIsNotConstructed = errors.New(
		"SetCleanerAvailabilityCommand must be created via NewSetCleanerAvailabilityCommand constructor",
	)
)

// SetCleanerAvailabilityCommand represents flipping a cleaner's administrative
// availability switch. An unavailable cleaner cannot claim new orders but
// keeps the orders they already hold.
type SetCleanerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	cleanerID int64
	available bool

	guard guard.ConstructorGuard
}

// NewSetCleanerAvailabilityCommand creates a command to change a cleaner's availability.
func NewSetCleanerAvailabilityCommand(cleanerID int64, available bool) (SetCleanerAvailabilityCommand, error) {
	availabilityCommand := SetCleanerAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setCleanerID(cleanerID); err != nil {
		return SetCleanerAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCleanerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCleanerAvailabilityCommandIsNotConstructed)
}

// CleanerID returns the identifier of the cleaner being updated.
func (c SetCleanerAvailabilityCommand) CleanerID() int64 {
	return c.cleanerID
}

// Available returns the requested availability state.
func (c SetCleanerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetCleanerAvailabilityCommand) setCleanerID(cleanerID int64) error {
	if cleanerID <= 0 {
		return errs.NewValueIsInvalidError("cleanerID")
	}

	c.cleanerID = cleanerID
	return nil
}
