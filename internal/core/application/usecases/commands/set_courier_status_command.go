package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetCourierStatusCommandIsNotConstructed = errors.New(
	"SetCourierStatusCommand must be created via NewSetCourierStatusCommand constructor",
)

// SetCourierStatusCommand represents a courier going on or off duty.
type SetCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID string
	active    bool

	guard guard.ConstructorGuard
}

// NewSetCourierStatusCommand creates a duty-status command.
func NewSetCourierStatusCommand(courierID string, active bool) (SetCourierStatusCommand, error) {
	if courierID == "" {
		return SetCourierStatusCommand{}, errs.NewValueIsRequiredError("courierId")
	}

	return SetCourierStatusCommand{
		courierID: courierID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierStatusCommandIsNotConstructed)
}

func (c SetCourierStatusCommand) CourierID() string { return c.courierID }
func (c SetCourierStatusCommand) Active() bool      { return c.active }
