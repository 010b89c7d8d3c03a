package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier profile,
	// including the duty flag and the push token.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its opaque id.
	// Returns errs.ObjectNotFoundError when no profile exists.
	Get(ctx context.Context, id string) (*courier.Courier, error)

	// GetAllActive retrieves every on-duty courier. Used to collect
	// push tokens for new-order broadcasts.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
