package commands

import (
	"context"

	"cleaning/internal/core/application/availability"
)

// AdvanceOrderCommandHandler handles cleaner-driven status transitions.
// The order row is locked for the duration of the transaction so a concurrent
// administrative reassignment cannot interleave with the transition.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, index)
//	cmd, _ := NewAdvanceOrderCommand(orderID, cleanerID, order.Going)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrNotAssigned):
//	    // acting cleaner does not hold this order
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // skipped a step, moved backward, or tried to mark paid
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	index      *availability.Index
}

// NewAdvanceOrderCommandHandler creates a handler for status transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, index *availability.Index) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the transition command.
// Locks the order row, lets the aggregate decide whether the step is legal
// and persists the result. The availability index is updated after commit so
// a cleaner finishing an order frees up immediately.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	advancedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = advancedOrder.Advance(cmd.CleanerID(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, advancedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.index != nil {
		h.index.Apply(advancedOrder)
	}

	return nil
}
