package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/payout"
	"dispatch/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler closes out a delivery: writes the immutable
// completed record, accrues the delivery fee onto the courier's pending
// payout, and removes the claimed and available source records. Everything
// runs in one transaction, and the whole operation is idempotent: a retry of
// an already-completed claim succeeds without accruing a second fee.
type CompleteDeliveryCommandHandler struct {
	uowFactory CompleteUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory CompleteUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// CompleteDeliveryResult describes the completed record, whether it was
// written by this request or an earlier retry.
type CompleteDeliveryResult struct {
	CompletedID kernel.UUID
	OrderID     string
	CompletedAt time.Time
	GrandTotal  float64
}

func resultFrom(completed *delivery.CompletedOrder) CompleteDeliveryResult {
	return CompleteDeliveryResult{
		CompletedID: completed.ID(),
		OrderID:     completed.OrderID(),
		CompletedAt: completed.CompletedAt(),
		GrandTotal:  completed.Snapshot().Totals.GrandTotal(),
	}
}

// buildAccrual assembles the ledger contribution for the delivery fee. Bank
// details come from the courier profile when one exists; couriers without a
// profile still earn, with the bank fields left blank.
func buildAccrual(
	ctx context.Context,
	uow CompleteUoW,
	claim *delivery.ClaimedDelivery,
	completed *delivery.CompletedOrder,
) (payout.Accrual, error) {
	accountNumber := ""
	ifscCode := ""

	profile, err := uow.CourierRepository().Get(ctx, claim.Courier().ID())
	if err == nil {
		accountNumber = profile.AccountNumber()
		ifscCode = profile.IfscCode()
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return payout.Accrual{}, err
	}

	return payout.NewAccrual(
		claim.Courier().ID(),
		claim.Courier().Name(),
		claim.Courier().Phone(),
		accountNumber,
		ifscCode,
		claim.Snapshot().Totals.DeliveryFee(),
		claim.OrderID(),
		completed.CompletedAt(),
	)
}

// Handle completes the claimed delivery. A claim that already has a
// completed record, or a claim id that is gone but was completed earlier, is
// reported as success with the earlier record's data. The completion-log
// uniqueness constraint backstops the check under concurrent retries.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) (CompleteDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return CompleteDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimsRepo := uow.ClaimedDeliveryRepository()
	completedRepo := uow.CompletedOrderRepository()

	earlier, err := completedRepo.GetByOriginClaimID(ctx, command.ClaimID())
	if err == nil {
		return resultFrom(earlier), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CompleteDeliveryResult{}, err
	}

	claim, err := claimsRepo.Get(ctx, command.ClaimID())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	completed, err := claim.Complete(kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err := completedRepo.Add(ctx, completed); err != nil {
		// A concurrent retry completed first. The duplicate insert left
		// the transaction aborted, so discard it and read the winner's
		// record through a fresh connection.
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			_ = uow.Rollback(ctx)
			earlier, lookupErr := uow.CompletedOrderRepository().GetByOriginClaimID(ctx, command.ClaimID())
			if lookupErr != nil {
				return CompleteDeliveryResult{}, lookupErr
			}
			return resultFrom(earlier), nil
		}
		return CompleteDeliveryResult{}, err
	}

	accrual, err := buildAccrual(ctx, uow, claim, completed)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	if err := uow.PayoutRepository().Accrue(ctx, accrual); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err := claimsRepo.Delete(ctx, claim.ID()); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err := uow.AvailableOrderRepository().Delete(ctx, claim.OriginID()); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	return resultFrom(completed), nil
}
