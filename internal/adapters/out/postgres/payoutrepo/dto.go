// Package payoutrepo persists the per-courier earnings ledger. A composite
// unique index on (courier_id, status) keeps at most one open Pending row
// per courier; accruals land on that row atomically.
package payoutrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/payout"
)

// PendingPayoutDTO represents the database structure for ledger rows.
type PendingPayoutDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID string    `gorm:"uniqueIndex:idx_payout_courier_status"`
	Status    string    `gorm:"uniqueIndex:idx_payout_courier_status"`

	CourierName   string
	CourierPhone  string
	AccountNumber string
	IfscCode      string

	Amount     float64
	Deliveries int

	LastOrderID string
	LastOrderAt time.Time
}

// TableName overrides GORM's default naming to use "pending_payouts".
func (PendingPayoutDTO) TableName() string {
	return "pending_payouts"
}

// fromAccrual builds the row an accrual would create for a courier with no
// open balance yet.
func fromAccrual(accrual payout.Accrual) PendingPayoutDTO {
	return PendingPayoutDTO{
		ID:        kernel.NewUUID().Bytes(),
		CourierID: accrual.CourierID(),
		Status:    payout.StatusPending,

		CourierName:   accrual.CourierName(),
		CourierPhone:  accrual.CourierPhone(),
		AccountNumber: accrual.AccountNumber(),
		IfscCode:      accrual.IfscCode(),

		Amount:     accrual.Amount(),
		Deliveries: 1,

		LastOrderID: accrual.OrderID(),
		LastOrderAt: accrual.OccurredAt(),
	}
}

// toDomain converts a database DTO back to a ledger aggregate.
func toDomain(dto PendingPayoutDTO) (*payout.PendingPayout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return payout.RestorePendingPayout(
		id,
		dto.CourierID,
		dto.CourierName,
		dto.CourierPhone,
		dto.AccountNumber,
		dto.IfscCode,
		dto.Amount,
		dto.Deliveries,
		dto.Status,
		dto.LastOrderID,
		dto.LastOrderAt,
	)
}
