package courier

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is the courier-profile aggregate.
//
// Courier follows these invariants:
//   - Must have a non-empty id
//   - A freshly registered courier is on duty
//   - Can only be created through NewCourier or RestoreCourier
type Courier struct {
	id    string
	name  string
	phone string

	accountNumber string
	ifscCode      string

	isActive    bool
	notifyToken string

	guard guard.ConstructorGuard
}

// NewCourier registers a courier profile. New couriers start on duty.
func NewCourier(id string, name string, phone string, accountNumber string, ifscCode string) (*Courier, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	return &Courier{
		id:    id,
		name:  name,
		phone: phone,

		accountNumber: accountNumber,
		ifscCode:      ifscCode,

		isActive: true,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a Courier from persistence.
func RestoreCourier(
	id string,
	name string,
	phone string,
	accountNumber string,
	ifscCode string,
	isActive bool,
	notifyToken string,
) (*Courier, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	return &Courier{
		id:    id,
		name:  name,
		phone: phone,

		accountNumber: accountNumber,
		ifscCode:      ifscCode,

		isActive:    isActive,
		notifyToken: notifyToken,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *Courier) Validate() error {
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() string            { return c.id }
func (c *Courier) Name() string          { return c.name }
func (c *Courier) Phone() string         { return c.phone }
func (c *Courier) AccountNumber() string { return c.accountNumber }
func (c *Courier) IfscCode() string      { return c.ifscCode }
func (c *Courier) IsActive() bool        { return c.isActive }
func (c *Courier) NotifyToken() string   { return c.notifyToken }

// SetActive flips the duty flag. Setting the current value is a no-op.
func (c *Courier) SetActive(active bool) {
	c.isActive = active
}

// SaveNotifyToken stores the push token the courier's device registered.
func (c *Courier) SaveNotifyToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errs.NewValueIsRequiredError("token")
	}
	c.notifyToken = token
	return nil
}
