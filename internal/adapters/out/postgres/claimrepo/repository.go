package claimrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GormClaimedDeliveryRepository implements ClaimedDeliveryRepository using
// GORM. Requires the connection to be opened with TranslateError so a
// violated unique index surfaces as gorm.ErrDuplicatedKey.
type GormClaimedDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClaimedDeliveryRepository creates a new GORM claimed-delivery
// repository.
func NewGormClaimedDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormClaimedDeliveryRepository {
	return &GormClaimedDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a claimed delivery. Losing the uniqueness race on order_id is
// reported as errs.ObjectAlreadyExistsError.
func (r *GormClaimedDeliveryRepository) Add(ctx context.Context, aggregate *delivery.ClaimedDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderId", aggregate.OrderID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing claimed delivery.
func (r *GormClaimedDeliveryRepository) Update(ctx context.Context, aggregate *delivery.ClaimedDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a claimed delivery by record id.
func (r *GormClaimedDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.ClaimedDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClaimedDeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("claim", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the claimed delivery for a human-facing order id.
func (r *GormClaimedDeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*delivery.ClaimedDelivery, error) {
	var dto ClaimedDeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByCourier retrieves the courier's current in-flight delivery.
func (r *GormClaimedDeliveryRepository) GetActiveByCourier(ctx context.Context, courierID string) (*delivery.ClaimedDelivery, error) {
	var dto ClaimedDeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierId", courierID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every in-flight delivery, oldest first.
func (r *GormClaimedDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.ClaimedDelivery, error) {
	var dtos []ClaimedDeliveryDTO
	if err := r.db.WithContext(ctx).Order("accepted_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	claims := make([]*delivery.ClaimedDelivery, 0, len(dtos))
	for _, dto := range dtos {
		claim, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	return claims, nil
}

// Delete removes a claimed record.
func (r *GormClaimedDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ClaimedDeliveryDTO{}, "id = ?", id.Bytes()).Error
}
