package order

import (
	"errors"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCourierIDIsRequired is returned when a claim or rejection arrives
	// without a courier identifier.
	ErrCourierIDIsRequired = errs.NewValueIsRequiredError("courierId")
)

// Order is the Available-stage aggregate: a restaurant-accepted order waiting
// in the pool for a courier to claim it.
//
// Order follows these invariants:
//   - Must have a valid record id and a non-empty human-facing order id
//   - The assigned courier id is nil while the status is Available
//   - The rejected-by list is set-like: a courier appears at most once
//   - Can only be created through NewOrder or RestoreOrder
//
// The human-facing order id (e.g. "O-100") is stable across all pipeline
// stages and is the key the claimed-delivery uniqueness constraint guards.
type Order struct {
	// id is the record identifier of this Available-stage document
	id kernel.UUID

	// orderID is the human-facing order number, stable across stages
	orderID string

	// customer and restaurant are the two parties of the order
	customer   Party
	restaurant Party

	// items are the ordered dishes
	items []LineItem

	// totals are the computed money amounts
	totals Totals

	// payment carries the opaque payment-provider references
	payment PaymentRef

	// destination is the delivery drop-off
	destination Destination

	// restaurantPlace is a free-text restaurant-location reference shown
	// to couriers, carried verbatim
	restaurantPlace string

	// status is the current lifecycle state
	status Status

	// courierID is the claiming courier's opaque id (nil while Available)
	courierID *string

	// rejectedBy lists couriers who declined this order (visibility filter only)
	rejectedBy []string

	// placedAt is when the order was placed
	placedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Available-stage Order with validation. This is the
// entry point for orders a restaurant has just accepted.
//
// The order starts in Available status with no courier assigned and an empty
// rejected-by list. All value-object parameters must themselves have been
// built through their constructors.
func NewOrder(
	id kernel.UUID,
	orderID string,
	customer Party,
	restaurant Party,
	items []LineItem,
	totals Totals,
	payment PaymentRef,
	destination Destination,
	restaurantPlace string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		payment:         payment,
		restaurantPlace: restaurantPlace,
		status:          Available,
		rejectedBy:      []string{},
		placedAt:        placedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderID(orderID),
		o.setParties(customer, restaurant),
		o.setItems(items),
		o.setTotals(totals),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status/courier/rejected-by combination and verifies their
// consistency instead of forcing the initial state.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	customer Party,
	restaurant Party,
	items []LineItem,
	totals Totals,
	payment PaymentRef,
	destination Destination,
	restaurantPlace string,
	placedAt time.Time,
	status Status,
	courierID *string,
	rejectedBy []string,
) (*Order, error) {
	o, err := NewOrder(id, orderID, customer, restaurant, items, totals, payment, destination, restaurantPlace, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.courierID = courierID
	if rejectedBy != nil {
		o.rejectedBy = rejectedBy
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their record identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the Available-stage record identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderID returns the human-facing order number.
func (o *Order) OrderID() string { return o.orderID }

// Customer returns the ordering customer.
func (o *Order) Customer() Party { return o.customer }

// Restaurant returns the restaurant party.
func (o *Order) Restaurant() Party { return o.restaurant }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Totals returns the computed money amounts.
func (o *Order) Totals() Totals { return o.totals }

// Payment returns the payment-provider references.
func (o *Order) Payment() PaymentRef { return o.payment }

// Destination returns the delivery drop-off.
func (o *Order) Destination() Destination { return o.destination }

// RestaurantPlace returns the free-text restaurant-location reference.
func (o *Order) RestaurantPlace() string { return o.restaurantPlace }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// CourierID returns the claiming courier's id, or nil while unclaimed.
func (o *Order) CourierID() *string { return o.courierID }

// RejectedBy returns a copy of the rejected-by courier list.
func (o *Order) RejectedBy() []string {
	return slices.Clone(o.rejectedBy)
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time { return o.placedAt }

// IsRejectedBy reports whether the given courier has declined this order.
func (o *Order) IsRejectedBy(courierID string) bool {
	return slices.Contains(o.rejectedBy, courierID)
}

// Claim marks the order as claimed by the given courier.
//
// This is only the Available-stage side of a claim: the record of truth is
// the row the caller inserts into the claimed-delivery collection under its
// uniqueness constraint. This transition exists so the pool stops showing
// the order and so reconciliation can tell a claimed source record from an
// unclaimed one.
//
// Returns an error if the courier id is empty or the order is not Available.
func (o *Order) Claim(courierID string) error {
	if courierID == "" {
		return ErrCourierIDIsRequired
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Reject appends the courier to the rejected-by list. The append is
// idempotent: rejecting twice leaves the courier listed exactly once.
// Rejection never changes the order status and never affects other
// couriers' ability to claim.
func (o *Order) Reject(courierID string) error {
	if courierID == "" {
		return ErrCourierIDIsRequired
	}

	if !slices.Contains(o.rejectedBy, courierID) {
		o.rejectedBy = append(o.rejectedBy, courierID)
	}
	return nil
}

// setID validates and sets the record identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderID validates and sets the human-facing order number.
func (o *Order) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setParties(customer Party, restaurant Party) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if err := restaurant.Validate(); err != nil {
		return err
	}
	o.customer = customer
	o.restaurant = restaurant
	return nil
}

// setItems validates and sets the line items. At least one item is required.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
