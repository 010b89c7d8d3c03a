package commands

import (
	"context"
)

// MarkPickedUpCommandHandler records restaurant handoff: the order is copied
// into the restaurant archive, its available-pool origin is removed and the
// claimed record is flagged as picked up. Repeating the call is harmless on
// all sides.
type MarkPickedUpCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for pickup events.
func NewMarkPickedUpCommandHandler(uowFactory PickupUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives the order for the restaurant and sets the pickup flag. An
// already-archived order id means an earlier attempt got through, which is
// treated as success.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, command MarkPickedUpCommand) error {
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

	claimsRepo := uow.ClaimedDeliveryRepository()

	claim, err := claimsRepo.Get(ctx, command.ClaimID())
	if err != nil {
		return err
	}

	// Archive skips an order id written by an earlier attempt without
	// raising, keeping the transaction usable on a retried pickup.
	if err := uow.ArchivedOrderRepository().Archive(ctx, claim); err != nil {
		return err
	}

	// Delete tolerates the origin record already being gone.
	if err := uow.AvailableOrderRepository().Delete(ctx, claim.OriginID()); err != nil {
		return err
	}

	claim.MarkPickedUp()

	if err := claimsRepo.Update(ctx, claim); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
