package commands

import (
	"context"

	"cleaning/internal/core/application/availability"
)

// AssignOrderCommandHandler handles administrative order updates. Unlike
// claiming, assignment bypasses the exclusivity rule: an administrator may
// knowingly give a cleaner a second active order. The aggregate still rejects
// updates that would leave an active order without a cleaner.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, index)
//	cleanerID := int64(42)
//	cmd, _ := NewAssignOrderCommand(orderID, &cleanerID, nil)
//	err := handler.Handle(ctx, cmd) // order is now accepted by cleaner 42
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	index      *availability.Index
}

// NewAssignOrderCommandHandler creates a handler for administrative order updates.
func NewAssignOrderCommandHandler(uowFactory UoWFactory, index *availability.Index) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the administrative update.
// Locks the order row, verifies a named cleaner exists, applies the patch and
// persists the result. After commit the availability index is updated for
// both the previously assigned cleaner and the current one.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	patchedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.CleanerID() != nil {
		if _, err = uow.CleanerRepository().Get(ctx, *cmd.CleanerID()); err != nil {
			return err
		}
	}

	var previousCleaner *int64
	if id := patchedOrder.Cleaner(); id != nil {
		v := *id
		previousCleaner = &v
	}

	if err = patchedOrder.AdminPatch(cmd.CleanerID(), cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, patchedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.index != nil {
		h.clearStaleEntry(previousCleaner, patchedOrder.ID(), patchedOrder.Cleaner())
		h.index.Apply(patchedOrder)
	}

	return nil
}

// clearStaleEntry drops the previous cleaner's index entry when the order was
// reassigned away from them and the entry still points at this order.
func (h *AssignOrderCommandHandler) clearStaleEntry(previous *int64, orderID int64, current *int64) {
	if previous == nil {
		return
	}
	if current != nil && *current == *previous {
		return
	}
	if activeOrderID, ok := h.index.ActiveOrder(*previous); ok && activeOrderID == orderID {
		h.index.Clear(*previous)
	}
}
