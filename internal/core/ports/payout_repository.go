package ports

import (
	"context"

	"dispatch/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for the per-courier
// earnings ledger. The store keeps at most one Pending row per courier.
type PayoutRepository interface {
	// Accrue adds one delivery's fee onto the courier's open Pending
	// row, creating the row if it does not exist yet. The operation is
	// atomic, so concurrent completions never lose an increment.
	Accrue(ctx context.Context, accrual payout.Accrual) error

	// GetPendingByCourier retrieves the courier's open balance, or
	// errs.ObjectNotFoundError when nothing has accrued yet.
	GetPendingByCourier(ctx context.Context, courierID string) (*payout.PendingPayout, error)
}
