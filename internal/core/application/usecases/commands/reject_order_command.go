package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a courier declining an available order.
// Rejection only hides the order from that courier's feed; the order stays
// claimable by everyone else.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderRecordID kernel.UUID
	courierID     string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a rejection command.
func NewRejectOrderCommand(orderRecordID kernel.UUID, courierID string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRecordID(orderRecordID),
		cmd.setCourierID(courierID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderRecordID() kernel.UUID { return c.orderRecordID }
func (c RejectOrderCommand) CourierID() string          { return c.courierID }

func (c *RejectOrderCommand) setOrderRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderRecordID = id
	return nil
}

func (c *RejectOrderCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	c.courierID = courierID
	return nil
}
