package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddAvailableOrderCommandIsNotConstructed = errors.New(
		"AddAvailableOrderCommand must be created via NewAddAvailableOrderCommand constructor",
	)
)

// AddAvailableOrderCommand represents a restaurant-accepted order being
// published to the courier pool. The value-object parameters must have been
// built through their own constructors.
type AddAvailableOrderCommand struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	orderID string

	customer   order.Party
	restaurant order.Party

	items  []order.LineItem
	totals order.Totals

	payment     order.PaymentRef
	destination order.Destination

	restaurantPlace string
	placedAt        time.Time

	guard guard.ConstructorGuard
}

// NewAddAvailableOrderCommand creates a command to publish a new order.
func NewAddAvailableOrderCommand(
	id kernel.UUID,
	orderID string,
	customer order.Party,
	restaurant order.Party,
	items []order.LineItem,
	totals order.Totals,
	payment order.PaymentRef,
	destination order.Destination,
	restaurantPlace string,
	placedAt time.Time,
) (AddAvailableOrderCommand, error) {
	cmd := AddAvailableOrderCommand{
		payment:         payment,
		restaurantPlace: restaurantPlace,
		placedAt:        placedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setOrderID(orderID),
		cmd.setParties(customer, restaurant),
		cmd.setItems(items),
		cmd.setTotals(totals),
		cmd.setDestination(destination),
	); err != nil {
		return AddAvailableOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAvailableOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddAvailableOrderCommandIsNotConstructed)
}

func (c AddAvailableOrderCommand) ID() kernel.UUID              { return c.id }
func (c AddAvailableOrderCommand) OrderID() string              { return c.orderID }
func (c AddAvailableOrderCommand) Customer() order.Party        { return c.customer }
func (c AddAvailableOrderCommand) Restaurant() order.Party      { return c.restaurant }
func (c AddAvailableOrderCommand) Items() []order.LineItem      { return c.items }
func (c AddAvailableOrderCommand) Totals() order.Totals         { return c.totals }
func (c AddAvailableOrderCommand) Payment() order.PaymentRef    { return c.payment }
func (c AddAvailableOrderCommand) Destination() order.Destination {
	return c.destination
}
func (c AddAvailableOrderCommand) RestaurantPlace() string { return c.restaurantPlace }
func (c AddAvailableOrderCommand) PlacedAt() time.Time     { return c.placedAt }

func (c *AddAvailableOrderCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *AddAvailableOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *AddAvailableOrderCommand) setParties(customer order.Party, restaurant order.Party) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer", err)
	}
	if err := restaurant.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant", err)
	}

	c.customer = customer
	c.restaurant = restaurant
	return nil
}

func (c *AddAvailableOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}

	c.items = items
	return nil
}

func (c *AddAvailableOrderCommand) setTotals(totals order.Totals) error {
	if err := totals.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("totals", err)
	}

	c.totals = totals
	return nil
}

func (c *AddAvailableOrderCommand) setDestination(destination order.Destination) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	c.destination = destination
	return nil
}
