// Package ports defines the persistence and messaging contracts between the
// application core and the infrastructure adapters. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// AvailableOrderRepository defines the persistence contract for the
// Available-stage order pool.
type AvailableOrderRepository interface {
	// Add persists a new available order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing available order,
	// including its claimed-by and rejected-by state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an available order by its record id.
	// Returns errs.ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an available order and locks its row for
	// the rest of the transaction, serializing concurrent
	// read-modify-write flows such as rejection.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAvailable retrieves every order still in Available status,
	// newest first. Rejected-by filtering is applied by the caller.
	GetAllAvailable(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order record from the pool. Deleting a record
	// that is already gone is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
