package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompletedOrderIsNotConstructed = errors.New("completed order is not constructed")

const (
	VerificationVerified = "verified"
	PaymentSettled       = "Completed"
)

// CompletedOrder is the immutable closing record of a delivery. originClaimID
// is unique in the store, which makes completion idempotent under retries.
type CompletedOrder struct {
	id            kernel.UUID
	originClaimID kernel.UUID
	originOrderID kernel.UUID

	snapshot Snapshot
	courier  CourierRef

	acceptedAt  time.Time
	completedAt time.Time

	verificationStatus string
	verifiedAt         time.Time
	paymentStatus      string

	guard guard.ConstructorGuard
}

// RestoreCompletedOrder rebuilds a completed record from persistence.
func RestoreCompletedOrder(
	id kernel.UUID,
	originClaimID kernel.UUID,
	originOrderID kernel.UUID,
	snapshot Snapshot,
	courier CourierRef,
	acceptedAt time.Time,
	completedAt time.Time,
	verificationStatus string,
	verifiedAt time.Time,
	paymentStatus string,
) (*CompletedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := originClaimID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("originClaimID", err)
	}
	if err := courier.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier", err)
	}

	return &CompletedOrder{
		id:            id,
		originClaimID: originClaimID,
		originOrderID: originOrderID,

		snapshot: snapshot.Clone(),
		courier:  courier,

		acceptedAt:  acceptedAt,
		completedAt: completedAt,

		verificationStatus: verificationStatus,
		verifiedAt:         verifiedAt,
		paymentStatus:      paymentStatus,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *CompletedOrder) Validate() error {
	return c.guard.Validate(ErrCompletedOrderIsNotConstructed)
}

func (c *CompletedOrder) ID() kernel.UUID            { return c.id }
func (c *CompletedOrder) OriginClaimID() kernel.UUID { return c.originClaimID }
func (c *CompletedOrder) OriginOrderID() kernel.UUID { return c.originOrderID }
func (c *CompletedOrder) OrderID() string            { return c.snapshot.OrderID }
func (c *CompletedOrder) Snapshot() Snapshot         { return c.snapshot.Clone() }
func (c *CompletedOrder) Courier() CourierRef        { return c.courier }
func (c *CompletedOrder) AcceptedAt() time.Time      { return c.acceptedAt }
func (c *CompletedOrder) CompletedAt() time.Time     { return c.completedAt }
func (c *CompletedOrder) VerificationStatus() string { return c.verificationStatus }
func (c *CompletedOrder) VerifiedAt() time.Time      { return c.verifiedAt }
func (c *CompletedOrder) PaymentStatus() string      { return c.paymentStatus }
