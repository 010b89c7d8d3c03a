package commands

import (
	"context"
)

// SetCourierStatusCommandHandler flips a courier's duty flag. Off-duty
// couriers keep their in-flight delivery but stop receiving broadcasts and
// cannot claim new orders.
type SetCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierStatusCommandHandler creates a handler for duty-status
// changes.
func NewSetCourierStatusCommandHandler(uowFactory CourierUoWFactory) SetCourierStatusCommandHandler {
	return SetCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the stored duty flag. An unknown courier id is an error:
// duty changes require a registered profile.
func (h SetCourierStatusCommandHandler) Handle(ctx context.Context, command SetCourierStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	profile, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	profile.SetActive(command.Active())

	if err := courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
