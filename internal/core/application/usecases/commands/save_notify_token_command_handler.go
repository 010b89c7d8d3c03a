package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
)

// SaveNotifyTokenCommandHandler stores the push token a courier device
// registered. A courier without a stored profile gets one created on the
// spot, so token registration works before any other profile write.
type SaveNotifyTokenCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSaveNotifyTokenCommandHandler creates a handler for push-token
// registration.
func NewSaveNotifyTokenCommandHandler(uowFactory CourierUoWFactory) SaveNotifyTokenCommandHandler {
	return SaveNotifyTokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle upserts the courier profile with the new token. Re-registering the
// same or a newer token replaces the stored one.
func (h SaveNotifyTokenCommandHandler) Handle(ctx context.Context, command SaveNotifyTokenCommand) error {
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
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		profile, err = courier.NewCourier(command.CourierID(), command.CourierName(), command.CourierPhone(), "", "")
		if err != nil {
			return err
		}
		if err := profile.SaveNotifyToken(command.Token()); err != nil {
			return err
		}
		if err := courierRepo.Add(ctx, profile); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := profile.SaveNotifyToken(command.Token()); err != nil {
			return err
		}
		if err := courierRepo.Update(ctx, profile); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
