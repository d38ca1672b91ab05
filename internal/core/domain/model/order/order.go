package order

import (
	"errors"
	"fmt"
	"time"

	"cleaning/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyTaken is returned when claiming an order that is no longer
	// pending or already has a cleaner. The typical cause is losing a claim race.
	ErrOrderAlreadyTaken = errors.New("order is already taken")

	// ErrNotAssigned is returned when a cleaner acts on an order that is not
	// assigned to them. Authorization failure, never retried.
	ErrNotAssigned = errors.New("order is not assigned to this cleaner")

	// ErrInvalidTransition is returned when a requested status is not a legal
	// next step from the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrIDAlreadyAssigned is returned when assigning a store identifier to an
	// order that already has one.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a cleaning order in the system. It is the aggregate root that
// manages the order lifecycle from customer submission through claiming by a
// cleaner to completion and payment.
//
// Order follows these invariants:
//   - Must have a valid owning customer
//   - Must have validated details with a non-empty address
//   - Must contain at least one service item
//   - A cleaner is assigned if and only if the status is not pending
//   - Status transitions follow the rules of the Status state machine:
//     cleaners move forward one step at a time, administrators may set any
//     enumerated status
//   - Can only be created through NewOrder or RestoreOrder
//
// The identifier is assigned by the entity store on first persist and is
// immutable afterwards.
type Order struct {
	// id is the store-assigned identifier (0 until first persisted)
	id int64

	// customerID references the customer who created the order
	customerID int64

	// cleanerID references the assigned cleaner (nil while pending)
	cleanerID *int64

	// status is the current state in the order lifecycle
	status Status

	// details describes the property, the address and the cleaning type
	details Details

	// items are the add-on service lines
	items []Item

	// totalPrice is the full price: base price plus item subtotals
	totalPrice float64

	// createdAt is the submission timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order for a customer submission.
//
// The order starts in Pending status with no cleaner assigned. Total price
// is computed by the pricing service and passed in by the caller.
//
// Parameters:
//   - customerID: owning customer (must be positive)
//   - details: validated order details
//   - items: at least one service item, each created via NewItem
//   - totalPrice: full order price (must not be negative)
//
// Returns the created order, or a validation error if any argument is invalid.
func NewOrder(customerID int64, details Details, items []Item, totalPrice float64) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setDetails(details),
		order.setItems(items),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persisted state.
//
// Unlike NewOrder it accepts an existing identifier, status, cleaner and
// creation time, and verifies the status/cleaner consistency invariant so a
// corrupted row cannot produce an invalid aggregate.
func RestoreOrder(
	id int64,
	customerID int64,
	cleanerID *int64,
	status Status,
	details Details,
	items []Item,
	totalPrice float64,
	createdAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCleaner(cleanerID != nil); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		status:        status,
		cleanerID:     cleanerID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setDetails(details),
		order.setItems(items),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id && o.id != 0
}

// ID returns the store-assigned identifier (0 if not yet persisted).
func (o *Order) ID() int64 {
	return o.id
}

// AssignID sets the store-generated identifier after the first persist.
// Fails with ErrIDAlreadyAssigned if the order already has an identifier.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Cleaner returns the assigned cleaner's identifier, or nil while pending.
func (o *Order) Cleaner() *int64 {
	return o.cleanerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the order details.
func (o *Order) Details() Details {
	return o.details
}

// Items returns the service items on the order.
func (o *Order) Items() []Item {
	return o.items
}

// TotalPrice returns the full order price.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsActive reports whether the order occupies its cleaner, i.e. the status
// is in the exclusivity subset {accepted, going, started}.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// Claim assigns the order to the given cleaner and moves it to Accepted.
//
// Preconditions:
//   - the order is Pending and unassigned, otherwise ErrOrderAlreadyTaken
//
// Claim does NOT check the cleaner's exclusivity rule; that is the claim
// policy's concern, decided against the cleaner's other active orders before
// this method is called.
func (o *Order) Claim(cleanerID int64) error {
	if cleanerID <= 0 {
		return errs.NewValueIsInvalidError("cleanerID")
	}

	if o.status != Pending || o.cleanerID != nil {
		return fmt.Errorf("%w: status is %s", ErrOrderAlreadyTaken, o.status)
	}

	o.status = Accepted
	o.cleanerID = &cleanerID
	return nil
}

// Advance moves the order one step forward along the canonical status order
// on behalf of its assigned cleaner.
//
// Rules:
//   - actorCleanerID must match the assigned cleaner, otherwise ErrNotAssigned
//   - target must be exactly the immediate successor of the current status,
//     otherwise ErrInvalidTransition (no skipping, no moving backward)
//   - Paid is never reachable this way; marking an order paid is an
//     administrative action
func (o *Order) Advance(actorCleanerID int64, target Status) error {
	if o.cleanerID == nil || *o.cleanerID != actorCleanerID {
		return fmt.Errorf("%w: order %d", ErrNotAssigned, o.id)
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}

	if next == Paid {
		return fmt.Errorf("%w: %s is terminal for cleaners", ErrInvalidTransition, o.status)
	}

	if target != next {
		return fmt.Errorf("%w: %s -> %s (next allowed is %s)",
			ErrInvalidTransition, o.status, target, next)
	}

	o.status = next
	return nil
}

// AdminPatch applies an administrative update: set the cleaner, force a
// status, or both. Either argument may be nil to leave the field unchanged.
//
// Administrators are not bound by the forward-by-one rule: any enumerated
// status is accepted, and no exclusivity check is performed. This is the
// escape hatch for overriding the automatic rules.
//
// The status/cleaner consistency invariant still holds: the resulting state
// must have a cleaner exactly when it is not pending, so an update that would
// strand an active order without a cleaner is rejected. Assigning a cleaner
// to a pending order without naming a status implicitly moves it to Accepted.
func (o *Order) AdminPatch(cleanerID *int64, status *Status) error {
	if cleanerID == nil && status == nil {
		return errs.NewValueIsRequiredError("cleanerID or status")
	}

	newCleanerID := o.cleanerID
	if cleanerID != nil {
		if *cleanerID <= 0 {
			return errs.NewValueIsInvalidError("cleanerID")
		}
		newCleanerID = cleanerID
	}

	newStatus := o.status
	if status != nil {
		if err := status.Validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTransition, err)
		}
		newStatus = *status
	}

	// Assigning a cleaner to a pending order implies acceptance.
	if status == nil && cleanerID != nil && newStatus == Pending {
		newStatus = Accepted
	}

	if err := newStatus.ValidateCanHaveCleaner(newCleanerID != nil); err != nil {
		return err
	}

	o.cleanerID = newCleanerID
	o.status = newStatus
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalPrice", fmt.Errorf("%f is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}
