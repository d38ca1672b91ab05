package order

import (
	"fmt"

	"cleaning/internal/pkg/errs"
)

// Status represents the lifecycle state of a cleaning order.
// It implements a state machine with a single canonical forward order;
// a cleaner may only move an order one step at a time along it.
//
// State transitions (cleaner path):
//
//	pending ──> accepted ──> going ──> started ──> finished
//
// The paid state follows finished but is reachable only through an
// administrative update: payment is settled outside the cleaner's workflow,
// so cleaners never mark an order as paid themselves.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status have no cleaner and are open for claiming.
	Pending

	// Accepted indicates a cleaner has taken the order.
	Accepted

	// Going indicates the cleaner is on the way to the order address.
	Going

	// Started indicates the cleaning is in progress.
	Started

	// Finished indicates the cleaning is done. This is the last status
	// a cleaner can move an order into.
	Finished

	// Paid indicates the customer has paid for the finished order.
	// Reachable only via administrative update; terminal.
	Paid
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Going:    "going",
		Started:  "started",
		Finished: "finished",
		Paid:     "paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Going:    "going",
		Started:  "started",
		Finished: "finished",
		Paid:     "paid",
	}
}

// StatusFromString parses a status from its lowercase string representation
// as used by the API and the database. Returns Unknown and an error for
// anything outside the enumerated set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the enumerated statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status as used by the API and
// the database. Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor in the canonical order.
//
// Valid successions:
//   - Pending -> Accepted
//   - Accepted -> Going
//   - Going -> Started
//   - Started -> Finished
//   - Finished -> Paid
//
// Paid has no successor; Unknown has none either. In both cases Next
// returns an error wrapping ErrInvalidTransition.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Paid {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, s)
	}
	return s + 1, nil
}

// IsActive reports whether the status belongs to the active subset
// {accepted, going, started} during which the assigned cleaner is
// considered busy and the exclusivity rule applies.
func (s Status) IsActive() bool {
	return s == Accepted || s == Going || s == Started
}

// IsTerminal reports whether no further cleaner-initiated transition is
// possible from this status.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Paid
}

// ValidateCanHaveCleaner validates the consistency between order status and
// cleaner assignment: a pending order must be unassigned and every other
// order must have a cleaner.
//
// Parameters:
//   - cleaner: whether the order has a cleaner assigned
//
// Returns:
//   - error: validation error if status and cleaner assignment are inconsistent
func (s Status) ValidateCanHaveCleaner(cleaner bool) error {
	if cleaner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a cleaner", s),
		)
	}

	if !cleaner && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no cleaner", s),
		)
	}

	return nil
}
