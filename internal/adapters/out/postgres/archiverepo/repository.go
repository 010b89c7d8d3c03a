package archiverepo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/delivery"
)

// GormArchivedOrderRepository implements ArchivedOrderRepository using GORM.
type GormArchivedOrderRepository struct {
	db *gorm.DB
}

// NewGormArchivedOrderRepository creates a new GORM archive repository.
func NewGormArchivedOrderRepository(db *gorm.DB) *GormArchivedOrderRepository {
	return &GormArchivedOrderRepository{db: db}
}

// Archive stores a flattened copy of the claimed delivery. An order id that
// was archived by an earlier attempt is skipped without raising an error, so
// a retried pickup never aborts the surrounding transaction.
func (r *GormArchivedOrderRepository) Archive(ctx context.Context, aggregate *delivery.ClaimedDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}
