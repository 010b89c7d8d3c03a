package delivery

import (
	"slices"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// CourierRef identifies the courier on claimed and completed records. Courier
// ids are the opaque identifiers issued by the identity provider, so the ref
// is a plain value rather than a kernel.UUID.
type CourierRef struct {
	id    string
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewCourierRef(id string, name string, phone string) (CourierRef, error) {
	if strings.TrimSpace(id) == "" {
		return CourierRef{}, errs.NewValueIsRequiredError("id")
	}

	return CourierRef{
		id:    id,
		name:  name,
		phone: phone,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CourierRef) ID() string    { return c.id }
func (c CourierRef) Name() string  { return c.name }
func (c CourierRef) Phone() string { return c.phone }

func (c CourierRef) Validate() error {
	return c.guard.Validate(ErrCourierRefIsNotConstructed)
}

// Snapshot is the denormalized copy of an order carried by claimed and
// completed records. It is taken once, at claim time, and never mutated.
type Snapshot struct {
	OrderID         string
	Customer        order.Party
	Restaurant      order.Party
	Items           []order.LineItem
	Totals          order.Totals
	Payment         order.PaymentRef
	Destination     order.Destination
	RestaurantPlace string
	RejectedBy      []string
	PlacedAt        time.Time
}

// TakeSnapshot copies everything a downstream record needs from src.
func TakeSnapshot(src *order.Order) (Snapshot, error) {
	if src == nil {
		return Snapshot{}, errs.NewValueIsRequiredError("src")
	}
	if err := src.Validate(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		OrderID:         src.OrderID(),
		Customer:        src.Customer(),
		Restaurant:      src.Restaurant(),
		Items:           src.Items(),
		Totals:          src.Totals(),
		Payment:         src.Payment(),
		Destination:     src.Destination(),
		RestaurantPlace: src.RestaurantPlace(),
		RejectedBy:      src.RejectedBy(),
		PlacedAt:        src.PlacedAt(),
	}, nil
}

// Clone returns an independent copy so aggregate getters cannot leak
// mutable slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Items = slices.Clone(s.Items)
	out.RejectedBy = slices.Clone(s.RejectedBy)
	return out
}
