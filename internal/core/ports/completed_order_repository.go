package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// CompletedOrderRepository defines the persistence contract for the immutable
// completion log. The store keeps origin-claim ids unique so a delivery can
// be completed at most once.
type CompletedOrderRepository interface {
	// Add persists a completed record. Returns
	// errs.ObjectAlreadyExistsError when the claim was already
	// completed by an earlier request.
	Add(ctx context.Context, aggregate *delivery.CompletedOrder) error

	// ExistsByOriginClaimID reports whether the claim already has a
	// completed record. Used to make completion idempotent.
	ExistsByOriginClaimID(ctx context.Context, originClaimID kernel.UUID) (bool, error)

	// GetByOriginClaimID retrieves the completed record written for the
	// claim, or errs.ObjectNotFoundError when the claim has not been
	// completed.
	GetByOriginClaimID(ctx context.Context, originClaimID kernel.UUID) (*delivery.CompletedOrder, error)

	// GetAllByCourier retrieves a courier's completed deliveries,
	// most recent first.
	GetAllByCourier(ctx context.Context, courierID string) ([]*delivery.CompletedOrder, error)
}
