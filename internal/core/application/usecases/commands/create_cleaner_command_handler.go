package commands

import (
	"context"

	"cleaning/internal/core/domain/model/cleaner"
)

// CreateCleanerCommandHandler handles cleaner profile registration.
// New profiles start available so the cleaner can claim orders immediately.
type CreateCleanerCommandHandler struct {
	uowFactory CleanerUoWFactory
}

// NewCreateCleanerCommandHandler creates a handler for cleaner registration.
func NewCreateCleanerCommandHandler(uowFactory CleanerUoWFactory) CreateCleanerCommandHandler {
	return CreateCleanerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Creates the profile and persists it; fails if a profile already exists for
// the user.
func (h *CreateCleanerCommandHandler) Handle(ctx context.Context, cmd CreateCleanerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCleaner, err := cleaner.NewCleaner(cmd.UserID(), cmd.Name(), cmd.City())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CleanerRepository().Add(ctx, newCleaner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
