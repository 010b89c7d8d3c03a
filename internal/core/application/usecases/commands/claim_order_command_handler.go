package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyClaimed is returned when another courier won the
	// race for the same order.
	ErrOrderAlreadyClaimed = errors.New("order already claimed by another courier")

	// ErrCourierInactive is returned when an off-duty courier attempts
	// a claim.
	ErrCourierInactive = errors.New("courier is not on duty")

	// ErrCourierBusy is returned when the courier already has an
	// in-flight delivery.
	ErrCourierBusy = errors.New("courier already has an active delivery")
)

// ClaimOrderCommandHandler arbitrates claim races. The claimed-delivery
// insert and the available-order update run in one transaction; the store's
// order-id uniqueness constraint guarantees at most one winner, and every
// loser gets ErrOrderAlreadyClaimed regardless of interleaving.
type ClaimOrderCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for claim arbitration.
func NewClaimOrderCommandHandler(
	uowFactory ClaimUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "claim_order"),
	}
}

// Handle processes a claim attempt. Cheap rejects run first: the courier
// must be on duty, then free, and only then is the order loaded and the
// claimed insert raced against the uniqueness constraint. A courier without
// a stored profile is treated as on duty. The winner is pushed a
// confirmation after commit; a push failure is logged, never propagated.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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
	claimsRepo := uow.ClaimedDeliveryRepository()

	notifyToken := ""
	profile, err := uow.CourierRepository().Get(ctx, command.CourierID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// no profile yet, claims are allowed
	case err != nil:
		return err
	case !profile.IsActive():
		return ErrCourierInactive
	default:
		notifyToken = profile.NotifyToken()
	}

	_, err = claimsRepo.GetActiveByCourier(ctx, command.CourierID())
	switch {
	case err == nil:
		return ErrCourierBusy
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	aggregate, err := ordersRepo.Get(ctx, command.OrderRecordID())
	if err != nil {
		return err
	}
	if aggregate.CourierID() != nil {
		return ErrOrderAlreadyClaimed
	}

	if err := aggregate.Claim(command.CourierID()); err != nil {
		return err
	}

	courierRef, err := delivery.NewCourierRef(command.CourierID(), command.CourierName(), command.CourierPhone())
	if err != nil {
		return err
	}

	claim, err := delivery.NewClaimedDelivery(kernel.NewUUID(), aggregate, courierRef, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := claimsRepo.Add(ctx, claim); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ErrOrderAlreadyClaimed
		}
		return err
	}

	if err := ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.confirm(ctx, claim, notifyToken)
	return nil
}

func (h ClaimOrderCommandHandler) confirm(ctx context.Context, claim *delivery.ClaimedDelivery, token string) {
	if token == "" {
		return
	}

	body := fmt.Sprintf("Order %s is yours, head to the restaurant", claim.OrderID())
	if err := h.notifier.Notify(ctx, "Delivery assigned", body, []string{token}); err != nil {
		h.logger.Warn("claim confirmation failed", "orderId", claim.OrderID(), "error", err)
	}
}
