package commands

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AddAvailableOrderCommandHandler publishes a restaurant-accepted order to
// the courier pool and broadcasts a push notification to every on-duty
// courier. The broadcast is best effort: a notification failure never fails
// the publish.
type AddAvailableOrderCommandHandler struct {
	uowFactory AddOrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAddAvailableOrderCommandHandler creates a handler for order publishing.
func NewAddAvailableOrderCommandHandler(
	uowFactory AddOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AddAvailableOrderCommandHandler {
	return AddAvailableOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "add_available_order"),
	}
}

// Handle stores the order in the available pool and, once the insert is
// committed, notifies on-duty couriers that a new order is up for claiming.
func (h AddAvailableOrderCommandHandler) Handle(ctx context.Context, command AddAvailableOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		command.ID(),
		command.OrderID(),
		command.Customer(),
		command.Restaurant(),
		command.Items(),
		command.Totals(),
		command.Payment(),
		command.Destination(),
		command.RestaurantPlace(),
		command.PlacedAt(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AvailableOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	couriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.broadcast(ctx, aggregate, couriers)
	return nil
}

func (h AddAvailableOrderCommandHandler) broadcast(ctx context.Context, aggregate *order.Order, couriers []*courier.Courier) {
	tokens := make([]string, 0, len(couriers))
	for _, c := range couriers {
		if c.NotifyToken() != "" {
			tokens = append(tokens, c.NotifyToken())
		}
	}
	if len(tokens) == 0 {
		return
	}

	body := fmt.Sprintf("Order %s from %s is up for claiming", aggregate.OrderID(), aggregate.Restaurant().Name())
	if err := h.notifier.Notify(ctx, "New order available", body, tokens); err != nil {
		h.logger.Warn("broadcast failed", "orderId", aggregate.OrderID(), "error", err)
	}
}
