package services

import (
	"errors"
	"fmt"

	"cleaning/internal/core/domain/model/cleaner"
	"cleaning/internal/core/domain/model/order"
)

var (
	// ErrCleanerHasActiveOrder is returned when a cleaner tries to claim an order
	// while already holding an order in the active subset {accepted, going, started}.
	// The condition clears once that order reaches a non-active status.
	ErrCleanerHasActiveOrder = errors.New("cleaner already has an active order")

	// ErrCleanerUnavailable is returned when a cleaner whose administrative
	// availability switch is off tries to claim an order.
	ErrCleanerUnavailable = errors.New("cleaner is unavailable")
)

// ClaimPolicy is a domain service deciding whether a cleaner may take an
// unassigned order. It is the single place where the exclusivity rule (one
// active order per cleaner at a time) is enforced.
//
// The policy operates on state the caller read inside one transaction: the
// order being claimed and the claimant's current active orders. Administrative
// assignment deliberately bypasses this policy.
//
// Example usage:
//
//	policy := services.NewClaimPolicy()
//	if err := policy.Claim(order, cleaner, activeOrders); err != nil {
//	    switch {
//	    case errors.Is(err, order.ErrOrderAlreadyTaken):
//	        // lost the race for this order
//	    case errors.Is(err, services.ErrCleanerHasActiveOrder):
//	        // exclusivity rule
//	    }
//	}
type ClaimPolicy struct{}

// NewClaimPolicy creates a new ClaimPolicy instance.
func NewClaimPolicy() ClaimPolicy {
	return ClaimPolicy{}
}

// Claim validates the claim preconditions and, if they hold, assigns the
// order to the claimant and moves it to Accepted.
//
// Parameters:
//   - o: the order being claimed (must be pending and unassigned)
//   - claimant: the claiming cleaner (must be available)
//   - activeOrders: the claimant's currently assigned orders, as read within
//     the same transaction as o
//
// Returns:
//   - order.ErrOrderAlreadyTaken if the order is no longer claimable
//   - ErrCleanerUnavailable if the claimant is administratively switched off
//   - ErrCleanerHasActiveOrder if the claimant already holds an active order
func (p ClaimPolicy) Claim(o *order.Order, claimant *cleaner.Cleaner, activeOrders []*order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := claimant.Validate(); err != nil {
		return err
	}

	if !claimant.IsAvailable() {
		return fmt.Errorf("%w: cleaner %d", ErrCleanerUnavailable, claimant.ID())
	}

	for _, active := range activeOrders {
		if err := active.Validate(); err != nil {
			return err
		}
		if active.IsActive() {
			return fmt.Errorf("%w: cleaner %d holds order %d",
				ErrCleanerHasActiveOrder, claimant.ID(), active.ID())
		}
	}

	return o.Claim(claimant.ID())
}
