package commands

import (
	"errors"

	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrCreateCleanerCommandIsNotConstructed = errors.New(
		"CreateCleanerCommand must be created via NewCreateCleanerCommand constructor",
	)
	ErrCleanerNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateCleanerCommand represents an administrator promoting an existing user
// account to a cleaner profile.
type CreateCleanerCommand struct { //nolint:recvcheck //using for validation
	userID int64
	name   string
	city   string

	guard guard.ConstructorGuard
}

// NewCreateCleanerCommand creates a command to register a cleaner profile.
// The user id must be positive and the display name non-empty; the city is
// optional.
func NewCreateCleanerCommand(userID int64, name string, city string) (CreateCleanerCommand, error) {
	cleanerCommand := CreateCleanerCommand{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cleanerCommand.setUserID(userID),
		cleanerCommand.setName(name),
	); err != nil {
		return CreateCleanerCommand{}, err
	}

	return cleanerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCleanerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCleanerCommandIsNotConstructed)
}

// UserID returns the identifier of the promoted user account.
func (c CreateCleanerCommand) UserID() int64 {
	return c.userID
}

// Name returns the cleaner's display name.
func (c CreateCleanerCommand) Name() string {
	return c.name
}

// City returns the cleaner's working city.
func (c CreateCleanerCommand) City() string {
	return c.city
}

func (c *CreateCleanerCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userID")
	}

	c.userID = userID
	return nil
}

func (c *CreateCleanerCommand) setName(name string) error {
	if name == "" {
		return ErrCleanerNameIsRequired
	}

	c.name = name
	return nil
}
