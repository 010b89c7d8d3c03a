// Package payout models the per-courier earnings ledger. Each completed
// delivery accrues its delivery fee onto the courier's single open Pending
// row; the store keeps one such row per courier.
package payout

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPendingPayoutIsNotConstructed = errors.New("PendingPayout must be created via NewPendingPayout constructor")
	ErrAccrualIsNotConstructed       = errors.New("Accrual must be created via NewAccrual constructor")
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// Accrual is one completed delivery's contribution to a courier's balance.
// Contact and bank details are denormalized onto the ledger row so payout
// processing does not depend on the courier profile still existing; they may
// be empty when no profile was registered.
type Accrual struct {
	courierID    string
	courierName  string
	courierPhone string

	accountNumber string
	ifscCode      string

	amount     float64
	orderID    string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewAccrual creates one delivery's ledger contribution.
func NewAccrual(
	courierID string,
	courierName string,
	courierPhone string,
	accountNumber string,
	ifscCode string,
	amount float64,
	orderID string,
	occurredAt time.Time,
) (Accrual, error) {
	if strings.TrimSpace(courierID) == "" {
		return Accrual{}, errs.NewValueIsRequiredError("courierId")
	}
	if amount < 0 {
		return Accrual{}, errs.NewValueIsInvalidError("amount")
	}
	if occurredAt.IsZero() {
		return Accrual{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Accrual{
		courierID:    courierID,
		courierName:  courierName,
		courierPhone: courierPhone,

		accountNumber: accountNumber,
		ifscCode:      ifscCode,

		amount:     amount,
		orderID:    orderID,
		occurredAt: occurredAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Accrual) Validate() error {
	return a.guard.Validate(ErrAccrualIsNotConstructed)
}

func (a Accrual) CourierID() string     { return a.courierID }
func (a Accrual) CourierName() string   { return a.courierName }
func (a Accrual) CourierPhone() string  { return a.courierPhone }
func (a Accrual) AccountNumber() string { return a.accountNumber }
func (a Accrual) IfscCode() string      { return a.ifscCode }
func (a Accrual) Amount() float64       { return a.amount }
func (a Accrual) OrderID() string       { return a.orderID }
func (a Accrual) OccurredAt() time.Time { return a.occurredAt }

// PendingPayout is a courier's open earnings balance.
//
// PendingPayout follows these invariants:
//   - Must have a valid record id and a non-empty courier id
//   - The accrued amount never decreases and never goes negative
//   - Can only be created through NewPendingPayout or RestorePendingPayout
type PendingPayout struct {
	id        kernel.UUID
	courierID string

	courierName   string
	courierPhone  string
	accountNumber string
	ifscCode      string

	amount     float64
	deliveries int
	status     string

	lastOrderID string
	lastOrderAt time.Time

	guard guard.ConstructorGuard
}

// NewPendingPayout opens a courier's ledger row with its first accrual.
func NewPendingPayout(id kernel.UUID, accrual Accrual) (*PendingPayout, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := accrual.Validate(); err != nil {
		return nil, err
	}

	return &PendingPayout{
		id:        id,
		courierID: accrual.courierID,

		courierName:   accrual.courierName,
		courierPhone:  accrual.courierPhone,
		accountNumber: accrual.accountNumber,
		ifscCode:      accrual.ifscCode,

		amount:     accrual.amount,
		deliveries: 1,
		status:     StatusPending,

		lastOrderID: accrual.orderID,
		lastOrderAt: accrual.occurredAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePendingPayout reconstructs a ledger row from persistence.
func RestorePendingPayout(
	id kernel.UUID,
	courierID string,
	courierName string,
	courierPhone string,
	accountNumber string,
	ifscCode string,
	amount float64,
	deliveries int,
	status string,
	lastOrderID string,
	lastOrderAt time.Time,
) (*PendingPayout, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if strings.TrimSpace(courierID) == "" {
		return nil, errs.NewValueIsRequiredError("courierId")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if status != StatusPending && status != StatusPaid {
		return nil, errs.NewValueIsInvalidError("status")
	}

	return &PendingPayout{
		id:        id,
		courierID: courierID,

		courierName:   courierName,
		courierPhone:  courierPhone,
		accountNumber: accountNumber,
		ifscCode:      ifscCode,

		amount:     amount,
		deliveries: deliveries,
		status:     status,

		lastOrderID: lastOrderID,
		lastOrderAt: lastOrderAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (p *PendingPayout) Validate() error {
	return p.guard.Validate(ErrPendingPayoutIsNotConstructed)
}

func (p *PendingPayout) ID() kernel.UUID        { return p.id }
func (p *PendingPayout) CourierID() string      { return p.courierID }
func (p *PendingPayout) CourierName() string    { return p.courierName }
func (p *PendingPayout) CourierPhone() string   { return p.courierPhone }
func (p *PendingPayout) AccountNumber() string  { return p.accountNumber }
func (p *PendingPayout) IfscCode() string       { return p.ifscCode }
func (p *PendingPayout) Amount() float64        { return p.amount }
func (p *PendingPayout) Deliveries() int        { return p.deliveries }
func (p *PendingPayout) Status() string         { return p.status }
func (p *PendingPayout) LastOrderID() string    { return p.lastOrderID }
func (p *PendingPayout) LastOrderAt() time.Time { return p.lastOrderAt }

// Accrue adds one delivery's fee to the open balance and refreshes the
// denormalized courier details.
func (p *PendingPayout) Accrue(accrual Accrual) error {
	if err := accrual.Validate(); err != nil {
		return err
	}
	if p.status != StatusPending {
		return errs.NewValueIsInvalidError("status")
	}
	if accrual.courierID != p.courierID {
		return errs.NewValueIsInvalidError("courierId")
	}

	p.amount += accrual.amount
	p.deliveries++
	p.lastOrderID = accrual.orderID
	p.lastOrderAt = accrual.occurredAt

	if accrual.courierName != "" {
		p.courierName = accrual.courierName
	}
	if accrual.courierPhone != "" {
		p.courierPhone = accrual.courierPhone
	}
	if accrual.accountNumber != "" {
		p.accountNumber = accrual.accountNumber
	}
	if accrual.ifscCode != "" {
		p.ifscCode = accrual.ifscCode
	}

	return nil
}
