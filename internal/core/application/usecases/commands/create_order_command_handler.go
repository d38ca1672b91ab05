package commands

import (
	"context"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the order server side and persists it in "pending" status with no
// cleaner assigned.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, details, items)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and visible to cleaners in its city
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Computes the total price from the details and items, creates the order in
// "pending" status and persists it. The store assigns the order identifier,
// which is returned to the caller.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	totalPrice := services.NewPriceCalculator().Total(cmd.Details(), cmd.Items())

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.Details(), cmd.Items(), totalPrice)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
