// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AvailableOrderRepoFactory provides access to the available-order pool within a transaction.
	AvailableOrderRepoFactory interface {
		AvailableOrderRepository() ports.AvailableOrderRepository
	}

	// ClaimedDeliveryRepoFactory provides access to in-flight deliveries within a transaction.
	ClaimedDeliveryRepoFactory interface {
		ClaimedDeliveryRepository() ports.ClaimedDeliveryRepository
	}

	// CompletedOrderRepoFactory provides access to the completion log within a transaction.
	CompletedOrderRepoFactory interface {
		CompletedOrderRepository() ports.CompletedOrderRepository
	}

	// CourierRepoFactory provides access to courier profiles within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// PayoutRepoFactory provides access to the earnings ledger within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// ArchivedOrderRepoFactory provides access to the restaurant archive within a transaction.
	ArchivedOrderRepoFactory interface {
		ArchivedOrderRepository() ports.ArchivedOrderRepository
	}

	// AddOrderUoW manages transactions for publishing a new order. The
	// courier repository is read to collect broadcast push tokens.
	AddOrderUoW interface {
		TxManager
		AvailableOrderRepoFactory
		CourierRepoFactory
	}

	// AddOrderUoWFactory creates new AddOrderUoW instances.
	AddOrderUoWFactory interface {
		Create() AddOrderUoW
	}

	// ClaimUoW manages the claim transaction: the claimed-delivery
	// insert and the available-order update commit or roll back
	// together.
	ClaimUoW interface {
		TxManager
		AvailableOrderRepoFactory
		ClaimedDeliveryRepoFactory
		CourierRepoFactory
	}

	// ClaimUoWFactory creates new ClaimUoW instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// OrderUoW manages transactions for operations touching only the
	// available-order pool.
	OrderUoW interface {
		TxManager
		AvailableOrderRepoFactory
	}

	// OrderUoWFactory creates new OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PickupUoW manages the pickup transaction: archiving for the
	// restaurant, removing the available-pool origin and flagging the
	// claimed record.
	PickupUoW interface {
		TxManager
		ClaimedDeliveryRepoFactory
		ArchivedOrderRepoFactory
		AvailableOrderRepoFactory
	}

	// PickupUoWFactory creates new PickupUoW instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// CompleteUoW manages the completion transaction: the completed
	// insert, the payout accrual and the source-record cleanup commit
	// together. The courier repository supplies bank details for the
	// ledger row.
	CompleteUoW interface {
		TxManager
		AvailableOrderRepoFactory
		ClaimedDeliveryRepoFactory
		CompletedOrderRepoFactory
		PayoutRepoFactory
		CourierRepoFactory
	}

	// CompleteUoWFactory creates new CompleteUoW instances.
	CompleteUoWFactory interface {
		Create() CompleteUoW
	}

	// CourierUoW manages transactions for courier-profile operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new CourierUoW instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ReconcileUoW manages the reconciliation sweep across the claimed
	// pool, the completion log and the available pool.
	ReconcileUoW interface {
		TxManager
		AvailableOrderRepoFactory
		ClaimedDeliveryRepoFactory
		CompletedOrderRepoFactory
	}

	// ReconcileUoWFactory creates new ReconcileUoW instances.
	ReconcileUoWFactory interface {
		Create() ReconcileUoW
	}
)
