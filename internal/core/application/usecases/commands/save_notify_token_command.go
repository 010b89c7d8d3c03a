package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSaveNotifyTokenCommandIsNotConstructed = errors.New(
	"SaveNotifyTokenCommand must be created via NewSaveNotifyTokenCommand constructor",
)

// SaveNotifyTokenCommand represents a courier device registering its push
// token. Name and phone are carried so a profile can be created on first
// contact.
type SaveNotifyTokenCommand struct { //nolint:recvcheck //using for validation
	courierID    string
	token        string
	courierName  string
	courierPhone string

	guard guard.ConstructorGuard
}

// NewSaveNotifyTokenCommand creates a token-registration command.
func NewSaveNotifyTokenCommand(courierID string, token string, courierName string, courierPhone string) (SaveNotifyTokenCommand, error) {
	cmd := SaveNotifyTokenCommand{
		courierName:  courierName,
		courierPhone: courierPhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setToken(token),
	); err != nil {
		return SaveNotifyTokenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveNotifyTokenCommand) Validate() error {
	return c.guard.Validate(ErrSaveNotifyTokenCommandIsNotConstructed)
}

func (c SaveNotifyTokenCommand) CourierID() string    { return c.courierID }
func (c SaveNotifyTokenCommand) Token() string        { return c.token }
func (c SaveNotifyTokenCommand) CourierName() string  { return c.courierName }
func (c SaveNotifyTokenCommand) CourierPhone() string { return c.courierPhone }

func (c *SaveNotifyTokenCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	c.courierID = courierID
	return nil
}

func (c *SaveNotifyTokenCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}
