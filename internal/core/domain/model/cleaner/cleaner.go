package cleaner

import (
	"errors"

	"cleaning/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a cleaner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCleanerIsNotConstructed is returned when using an improperly initialized Cleaner.
	ErrCleanerIsNotConstructed = errors.New("Cleaner must be created via NewCleaner or RestoreCleaner constructor")
)

// Cleaner represents a cleaner profile in the system. A cleaner is an existing
// user account promoted by an administrator; the profile is identified by the
// user's id, which is what orders reference as their assigned cleaner.
//
// The availability flag is an administrative switch (vacation, suspension) and
// is independent of the one-active-order exclusivity rule: whether a cleaner
// currently holds an active order is always derived from the order store, never
// stored here.
type Cleaner struct {
	// userID identifies the underlying user account
	userID int64

	// name is the display name shown to customers and administrators
	name string

	// city is the cleaner's working city, used to match available orders
	city string

	// availability is the administrative on/off switch
	availability bool

	// isConstructed ensures the cleaner was created via a constructor
	isConstructed bool
}

// NewCleaner creates a cleaner profile for the given user.
// New profiles start available.
func NewCleaner(userID int64, name string, city string) (*Cleaner, error) {
	c := &Cleaner{
		availability:  true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setUserID(userID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.city = city
	return c, nil
}

// RestoreCleaner reconstructs a cleaner profile from persisted state.
func RestoreCleaner(userID int64, name string, city string, availability bool) (*Cleaner, error) {
	c, err := NewCleaner(userID, name, city)
	if err != nil {
		return nil, err
	}

	c.availability = availability
	return c, nil
}

// Validate ensures the Cleaner instance was properly constructed.
func (c *Cleaner) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCleanerIsNotConstructed
	}
	return nil
}

// ID returns the identifier of the underlying user account.
func (c *Cleaner) ID() int64 {
	return c.userID
}

// Name returns the cleaner's display name.
func (c *Cleaner) Name() string {
	return c.name
}

// City returns the cleaner's working city.
func (c *Cleaner) City() string {
	return c.city
}

// IsAvailable reports the administrative availability flag.
func (c *Cleaner) IsAvailable() bool {
	return c.availability
}

// SetAvailability flips the administrative availability switch.
// It has no effect on orders the cleaner already holds.
func (c *Cleaner) SetAvailability(available bool) {
	c.availability = available
}

// IsEqual compares two cleaners by user id.
func (c *Cleaner) IsEqual(other *Cleaner) bool {
	return other != nil && c.userID == other.userID
}

func (c *Cleaner) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userID")
	}
	c.userID = userID
	return nil
}

func (c *Cleaner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
