package payoutrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/payout"
	"dispatch/internal/pkg/errs"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db *gorm.DB
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB) *GormPayoutRepository {
	return &GormPayoutRepository{db: db}
}

// Accrue adds one delivery's fee onto the courier's Pending row. The upsert
// increments in place on conflict, so concurrent completions for the same
// courier never lose an increment.
func (r *GormPayoutRepository) Accrue(ctx context.Context, accrual payout.Accrual) error {
	if err := accrual.Validate(); err != nil {
		return err
	}

	dto := fromAccrual(accrual)

	// Contact and bank fields keep their previous value when the accrual
	// arrives without a courier profile.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "courier_id"}, {Name: "status"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":         gorm.Expr("pending_payouts.amount + ?", accrual.Amount()),
			"deliveries":     gorm.Expr("pending_payouts.deliveries + 1"),
			"courier_name":   gorm.Expr("COALESCE(NULLIF(?, ''), pending_payouts.courier_name)", dto.CourierName),
			"courier_phone":  gorm.Expr("COALESCE(NULLIF(?, ''), pending_payouts.courier_phone)", dto.CourierPhone),
			"account_number": gorm.Expr("COALESCE(NULLIF(?, ''), pending_payouts.account_number)", dto.AccountNumber),
			"ifsc_code":      gorm.Expr("COALESCE(NULLIF(?, ''), pending_payouts.ifsc_code)", dto.IfscCode),
			"last_order_id":  dto.LastOrderID,
			"last_order_at":  dto.LastOrderAt,
		}),
	}).Create(&dto).Error
}

// GetPendingByCourier retrieves the courier's open balance.
func (r *GormPayoutRepository) GetPendingByCourier(ctx context.Context, courierID string) (*payout.PendingPayout, error) {
	if courierID == "" {
		return nil, errs.NewValueIsRequiredError("courierId")
	}

	var dto PendingPayoutDTO
	err := r.db.WithContext(ctx).
		First(&dto, "courier_id = ? AND status = ?", courierID, payout.StatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierId", courierID)
		}
		return nil, err
	}

	return toDomain(dto)
}
