package commands

import (
	"context"
)

// SetCleanerAvailabilityCommandHandler handles availability switch updates.
type SetCleanerAvailabilityCommandHandler struct {
	uowFactory CleanerUoWFactory
}

// NewSetCleanerAvailabilityCommandHandler creates a handler for availability updates.
func NewSetCleanerAvailabilityCommandHandler(uowFactory CleanerUoWFactory) SetCleanerAvailabilityCommandHandler {
	return SetCleanerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update.
// Loads the profile, flips the switch and persists it. Orders the cleaner
// already holds are unaffected.
func (h *SetCleanerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCleanerAvailabilityCommand) error {
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

	cleanerRepo := uow.CleanerRepository()

	updatedCleaner, err := cleanerRepo.Get(ctx, cmd.CleanerID())
	if err != nil {
		return err
	}

	updatedCleaner.SetAvailability(cmd.Available())

	if err = cleanerRepo.Update(ctx, updatedCleaner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
