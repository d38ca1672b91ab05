package commands

import (
	"context"
	"fmt"

	"cleaning/internal/core/application/availability"
	"cleaning/internal/core/domain/services"
)

// ClaimOrderCommandHandler orchestrates the claim flow. The claim itself runs
// inside a single transaction with the order row, the claimant's row and the
// claimant's active order rows locked. Two cleaners racing for the same order
// serialize on the order row; one cleaner racing two claims serializes on
// their own cleaner row.
//
// The availability index is consulted before the transaction to reject
// obviously busy cleaners without touching the store, and updated after the
// commit. It is advisory only; the authoritative exclusivity check is the
// in-transaction read of the claimant's active orders.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory, index)
//	cmd, _ := NewClaimOrderCommand(orderID, cleanerID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyTaken):
//	    // another cleaner won the race
//	case errors.Is(err, services.ErrCleanerHasActiveOrder):
//	    // finish the current order first
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	index      *availability.Index
}

// NewClaimOrderCommandHandler creates a handler for order claiming.
// Requires a UoWFactory covering both repositories and the shared
// availability index.
func NewClaimOrderCommandHandler(uowFactory UoWFactory, index *availability.Index) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the claim command.
// Locks the order row, the claimant's row and the claimant's active order
// rows, applies the claim policy and persists the accepted order. Returns the domain errors unchanged
// so callers can map them: errs.ErrObjectNotFound when the order does not
// exist, order.ErrOrderAlreadyTaken when it was claimed first, and
// services.ErrCleanerHasActiveOrder when the exclusivity rule blocks the claim.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Fast path. A busy entry here saves a transaction; an empty one proves
	// nothing and the store is re-checked under lock below.
	if h.index != nil && h.index.IsBusy(cmd.CleanerID()) {
		return fmt.Errorf("%w: cleaner %d", services.ErrCleanerHasActiveOrder, cmd.CleanerID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cleanerRepo := uow.CleanerRepository()

	claimedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// The claimant's row must be locked before reading their active orders.
	// An empty active set has no rows to lock, so without this two claims by
	// the same cleaner on different orders would both see the set empty and
	// both pass the policy.
	claimant, err := cleanerRepo.GetForUpdate(ctx, cmd.CleanerID())
	if err != nil {
		return err
	}

	activeOrders, err := orderRepo.GetActiveByCleanerForUpdate(ctx, cmd.CleanerID())
	if err != nil {
		return err
	}

	if err = services.NewClaimPolicy().Claim(claimedOrder, claimant, activeOrders); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.index != nil {
		h.index.Apply(claimedOrder)
	}

	return nil
}
