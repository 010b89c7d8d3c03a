package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/payout"
)

// GetPendingPayoutQueryHandler reads a courier's open balance from the
// earnings ledger.
type GetPendingPayoutQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPayoutQueryHandler creates a handler for balance queries.
func NewGetPendingPayoutQueryHandler(db *gorm.DB) GetPendingPayoutQueryHandler {
	return GetPendingPayoutQueryHandler{db: db}
}

// Handle returns the courier's Pending balance. A courier who has not
// completed any delivery yet gets a zero Pending balance.
func (h GetPendingPayoutQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPayoutQuery,
) (GetPendingPayoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingPayoutQueryResponse{}, err
	}

	resp := GetPendingPayoutQueryResponse{
		CourierID: query.CourierID(),
		Status:    payout.StatusPending,
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			amount,
			deliveries,
			last_order_id,
			last_order_at
		FROM pending_payouts
		WHERE courier_id = ? AND status = ?
	`, query.CourierID(), payout.StatusPending).Row()

	var lastOrderID sql.NullString
	var lastOrderAt sql.NullTime

	err := row.Scan(&resp.Amount, &resp.Deliveries, &lastOrderID, &lastOrderAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, nil
	}
	if err != nil {
		return GetPendingPayoutQueryResponse{}, err
	}

	resp.LastOrderID = lastOrderID.String
	if lastOrderAt.Valid {
		t := lastOrderAt.Time
		resp.LastOrderAt = &t
	}

	return resp, nil
}
