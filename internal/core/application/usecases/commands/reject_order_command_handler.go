package commands

import (
	"context"
)

// RejectOrderCommandHandler records a courier's rejection on the order.
// Rejecting twice is a no-op; rejecting never blocks a later claim by the
// same courier.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the courier to the order's rejected-by list.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	ordersRepo := uow.AvailableOrderRepository()

	// The whole row is rewritten on update; the row lock keeps two
	// couriers' simultaneous rejections from dropping one entry.
	aggregate, err := ordersRepo.GetForUpdate(ctx, command.OrderRecordID())
	if err != nil {
		return err
	}

	if err := aggregate.Reject(command.CourierID()); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
