package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a courier's attempt to take an available
// order. Courier name and phone are carried for the claimed-record snapshot,
// since a courier may claim before a full profile exists.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderRecordID kernel.UUID

	courierID    string
	courierName  string
	courierPhone string

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command. Validates that the order
// record id is valid and the courier id is not empty.
func NewClaimOrderCommand(orderRecordID kernel.UUID, courierID string, courierName string, courierPhone string) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		courierName:  courierName,
		courierPhone: courierPhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRecordID(orderRecordID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) OrderRecordID() kernel.UUID { return c.orderRecordID }
func (c ClaimOrderCommand) CourierID() string          { return c.courierID }
func (c ClaimOrderCommand) CourierName() string        { return c.courierName }
func (c ClaimOrderCommand) CourierPhone() string       { return c.courierPhone }

func (c *ClaimOrderCommand) setOrderRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderRecordID = id
	return nil
}

func (c *ClaimOrderCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	c.courierID = courierID
	return nil
}
