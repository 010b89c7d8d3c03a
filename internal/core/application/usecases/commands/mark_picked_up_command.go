package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents the restaurant handing the order to the
// courier.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	claimID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a pickup command for a claimed delivery.
func NewMarkPickedUpCommand(claimID kernel.UUID) (MarkPickedUpCommand, error) {
	if err := claimID.Validate(); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return MarkPickedUpCommand{
		claimID: claimID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

func (c MarkPickedUpCommand) ClaimID() kernel.UUID { return c.claimID }
