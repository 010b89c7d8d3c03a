// Package postgres provides the GORM-based Unit of Work implementation. A
// unit of work owns one database transaction and hands out repositories
// bound to it, so a command's writes commit or roll back together. The claim
// and completion commands lean on this: their multi-table writes must be
// atomic for the dispatch invariants to hold.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres/archiverepo"
	"dispatch/internal/adapters/out/postgres/availablerepo"
	"dispatch/internal/adapters/out/postgres/claimrepo"
	"dispatch/internal/adapters/out/postgres/completedrepo"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/payoutrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for outbox-style processing after commit.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an open unit of work
// is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// AvailableOrderRepository returns a repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AvailableOrderRepository() ports.AvailableOrderRepository {
	return availablerepo.NewGormAvailableOrderRepository(uow.conn(), uow)
}

// ClaimedDeliveryRepository returns a repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ClaimedDeliveryRepository() ports.ClaimedDeliveryRepository {
	return claimrepo.NewGormClaimedDeliveryRepository(uow.conn(), uow)
}

// CompletedOrderRepository returns a repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CompletedOrderRepository() ports.CompletedOrderRepository {
	return completedrepo.NewGormCompletedOrderRepository(uow.conn(), uow)
}

// CourierRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// PayoutRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) PayoutRepository() ports.PayoutRepository {
	return payoutrepo.NewGormPayoutRepository(uow.conn())
}

// ArchivedOrderRepository returns a repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ArchivedOrderRepository() ports.ArchivedOrderRepository {
	return archiverepo.NewGormArchivedOrderRepository(uow.conn())
}

// TrackAggregate registers a uuid-keyed aggregate as modified within this
// unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id.String(),
		Aggregate: aggregate,
	})
}

// TrackCourier registers a courier profile, keyed by its opaque id, as
// modified within this unit of work.
func (uow *GormUnitOfWork) TrackCourier(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns every aggregate modified through this unit of
// work.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}
