package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrClaimedDeliveryIsNotConstructed = errors.New("claimed delivery is not constructed")
	ErrCourierRefIsNotConstructed      = errors.New("courier ref is not constructed")
)

// ClaimedDelivery is the working record of one courier fulfilling one order.
// The store enforces that at most one claimed record exists per order id,
// which is what makes concurrent claims race safe.
type ClaimedDelivery struct {
	id       kernel.UUID
	originID kernel.UUID

	snapshot Snapshot
	courier  CourierRef

	acceptedAt time.Time
	pickedUp   bool

	guard guard.ConstructorGuard
}

// NewClaimedDelivery snapshots src for the given courier. originID keeps a
// back reference to the available record so reconciliation can clean it up.
func NewClaimedDelivery(
	id kernel.UUID,
	src *order.Order,
	courier CourierRef,
	acceptedAt time.Time,
) (*ClaimedDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := courier.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier", err)
	}
	if acceptedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("acceptedAt")
	}

	snapshot, err := TakeSnapshot(src)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("src", err)
	}

	return &ClaimedDelivery{
		id:       id,
		originID: src.ID(),

		snapshot: snapshot,
		courier:  courier,

		acceptedAt: acceptedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreClaimedDelivery rebuilds a claimed delivery from persistence.
func RestoreClaimedDelivery(
	id kernel.UUID,
	originID kernel.UUID,
	snapshot Snapshot,
	courier CourierRef,
	acceptedAt time.Time,
	pickedUp bool,
) (*ClaimedDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := originID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("originID", err)
	}
	if err := courier.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier", err)
	}

	return &ClaimedDelivery{
		id:       id,
		originID: originID,

		snapshot: snapshot.Clone(),
		courier:  courier,

		acceptedAt: acceptedAt,
		pickedUp:   pickedUp,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (d *ClaimedDelivery) Validate() error {
	return d.guard.Validate(ErrClaimedDeliveryIsNotConstructed)
}

func (d *ClaimedDelivery) ID() kernel.UUID       { return d.id }
func (d *ClaimedDelivery) OriginID() kernel.UUID { return d.originID }
func (d *ClaimedDelivery) OrderID() string       { return d.snapshot.OrderID }
func (d *ClaimedDelivery) Snapshot() Snapshot    { return d.snapshot.Clone() }
func (d *ClaimedDelivery) Courier() CourierRef   { return d.courier }
func (d *ClaimedDelivery) AcceptedAt() time.Time { return d.acceptedAt }
func (d *ClaimedDelivery) PickedUp() bool        { return d.pickedUp }

// MarkPickedUp records restaurant handoff. Calling it again is a no-op.
func (d *ClaimedDelivery) MarkPickedUp() {
	d.pickedUp = true
}

// Complete produces the immutable completed record for this delivery.
// The claimed record itself is removed by the caller afterwards.
func (d *ClaimedDelivery) Complete(id kernel.UUID, completedAt time.Time) (*CompletedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if completedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("completedAt")
	}

	return &CompletedOrder{
		id:            id,
		originClaimID: d.id,
		originOrderID: d.originID,

		snapshot: d.snapshot.Clone(),
		courier:  d.courier,

		acceptedAt:  d.acceptedAt,
		completedAt: completedAt,

		verificationStatus: VerificationVerified,
		verifiedAt:         completedAt,
		paymentStatus:      PaymentSettled,

		guard: guard.NewConstructorGuard(),
	}, nil
}
