package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// ArchivedOrderRepository defines the persistence contract for the
// restaurant-side archive written at pickup time.
type ArchivedOrderRepository interface {
	// Archive stores a copy of the claimed delivery for the
	// restaurant's records. An order id archived by an earlier attempt
	// is skipped silently; archival is at-least-once.
	Archive(ctx context.Context, aggregate *delivery.ClaimedDelivery) error
}
