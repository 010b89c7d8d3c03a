package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a courier reporting the delivery
// handed to the customer.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	claimID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion command for a claimed
// delivery.
func NewCompleteDeliveryCommand(claimID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := claimID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		claimID: claimID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) ClaimID() kernel.UUID { return c.claimID }
