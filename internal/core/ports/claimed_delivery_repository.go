package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// ClaimedDeliveryRepository defines the persistence contract for in-flight
// deliveries. The store enforces order-id uniqueness across all claimed
// records; that constraint is what arbitrates concurrent claims.
type ClaimedDeliveryRepository interface {
	// Add persists a new claimed delivery. Returns
	// errs.ObjectAlreadyExistsError when another claim for the same
	// order id already exists, which signals a lost claim race.
	Add(ctx context.Context, aggregate *delivery.ClaimedDelivery) error

	// Update persists changes to an existing claimed delivery.
	Update(ctx context.Context, aggregate *delivery.ClaimedDelivery) error

	// Get retrieves a claimed delivery by its record id.
	Get(ctx context.Context, id kernel.UUID) (*delivery.ClaimedDelivery, error)

	// GetByOrderID retrieves the claimed delivery for a human-facing
	// order id. At most one can exist at a time.
	GetByOrderID(ctx context.Context, orderID string) (*delivery.ClaimedDelivery, error)

	// GetActiveByCourier retrieves the courier's current in-flight
	// delivery, or errs.ObjectNotFoundError when the courier is free.
	GetActiveByCourier(ctx context.Context, courierID string) (*delivery.ClaimedDelivery, error)

	// GetAll retrieves every in-flight delivery, oldest first.
	GetAll(ctx context.Context) ([]*delivery.ClaimedDelivery, error)

	// Delete removes a claimed record after completion. Deleting a
	// record that is already gone is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
