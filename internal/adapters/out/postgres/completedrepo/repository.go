package completedrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GormCompletedOrderRepository implements CompletedOrderRepository using
// GORM. Requires the connection to be opened with TranslateError.
type GormCompletedOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCompletedOrderRepository creates a new GORM completed-order
// repository.
func NewGormCompletedOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCompletedOrderRepository {
	return &GormCompletedOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a completed record. A second completion of the same claim is
// reported as errs.ObjectAlreadyExistsError.
func (r *GormCompletedOrderRepository) Add(ctx context.Context, aggregate *delivery.CompletedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("originClaimId", aggregate.OriginClaimID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsByOriginClaimID reports whether the claim already has a completed
// record.
func (r *GormCompletedOrderRepository) ExistsByOriginClaimID(ctx context.Context, originClaimID kernel.UUID) (bool, error) {
	if err := originClaimID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CompletedOrderDTO{}).
		Where("origin_claim_id = ?", originClaimID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByOriginClaimID retrieves the completed record written for the claim.
func (r *GormCompletedOrderRepository) GetByOriginClaimID(ctx context.Context, originClaimID kernel.UUID) (*delivery.CompletedOrder, error) {
	if err := originClaimID.Validate(); err != nil {
		return nil, err
	}

	var dto CompletedOrderDTO
	err := r.db.WithContext(ctx).First(&dto, "origin_claim_id = ?", originClaimID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("originClaimId", originClaimID.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCourier retrieves a courier's completed deliveries, most recent
// first.
func (r *GormCompletedOrderRepository) GetAllByCourier(ctx context.Context, courierID string) ([]*delivery.CompletedOrder, error) {
	var dtos []CompletedOrderDTO
	err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Find(&dtos, "courier_id = ?", courierID).Error
	if err != nil {
		return nil, err
	}

	completed := make([]*delivery.CompletedOrder, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		completed = append(completed, c)
	}

	return completed, nil
}
