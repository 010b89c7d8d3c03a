package commands

import (
	"context"
)

// ReconcileOrdersCommandHandler sweeps leftovers from interrupted
// completions. A crash between the completed-record insert and the source
// cleanup can leave a claimed record, and its available-pool origin, pointing
// at an order that is already done; the sweep removes them. The sweep is
// safe to repeat and safe to run concurrently with live traffic.
type ReconcileOrdersCommandHandler struct {
	uowFactory ReconcileUoWFactory
}

// NewReconcileOrdersCommandHandler creates a handler for the cleanup sweep.
func NewReconcileOrdersCommandHandler(uowFactory ReconcileUoWFactory) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes claimed records, and their available-pool origins, whose
// completion log entry already exists.
func (h ReconcileOrdersCommandHandler) Handle(ctx context.Context, command ReconcileOrdersCommand) error {
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
	completedRepo := uow.CompletedOrderRepository()
	ordersRepo := uow.AvailableOrderRepository()

	claims, err := claimsRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, claim := range claims {
		done, err := completedRepo.ExistsByOriginClaimID(ctx, claim.ID())
		if err != nil {
			return err
		}
		if !done {
			continue
		}

		if err := claimsRepo.Delete(ctx, claim.ID()); err != nil {
			return err
		}
		if err := ordersRepo.Delete(ctx, claim.OriginID()); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
