package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payout"
	"dispatch/internal/core/ports"
)

type MockAvailableOrderRepository struct{ mock.Mock }

func (m *MockAvailableOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAvailableOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAvailableOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAvailableOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAvailableOrderRepository) GetAllAvailable(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockAvailableOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClaimedDeliveryRepository struct{ mock.Mock }

func (m *MockClaimedDeliveryRepository) Add(ctx context.Context, d *delivery.ClaimedDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockClaimedDeliveryRepository) Update(ctx context.Context, d *delivery.ClaimedDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockClaimedDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.ClaimedDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.ClaimedDelivery), args.Error(1)
}

func (m *MockClaimedDeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*delivery.ClaimedDelivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.ClaimedDelivery), args.Error(1)
}

func (m *MockClaimedDeliveryRepository) GetActiveByCourier(ctx context.Context, courierID string) (*delivery.ClaimedDelivery, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.ClaimedDelivery), args.Error(1)
}

func (m *MockClaimedDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.ClaimedDelivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.ClaimedDelivery), args.Error(1)
}

func (m *MockClaimedDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCompletedOrderRepository struct{ mock.Mock }

func (m *MockCompletedOrderRepository) Add(ctx context.Context, c *delivery.CompletedOrder) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompletedOrderRepository) ExistsByOriginClaimID(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompletedOrderRepository) GetByOriginClaimID(ctx context.Context, id kernel.UUID) (*delivery.CompletedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.CompletedOrder), args.Error(1)
}

func (m *MockCompletedOrderRepository) GetAllByCourier(ctx context.Context, courierID string) ([]*delivery.CompletedOrder, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.CompletedOrder), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id string) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockPayoutRepository struct{ mock.Mock }

func (m *MockPayoutRepository) Accrue(ctx context.Context, accrual payout.Accrual) error {
	args := m.Called(ctx, accrual)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetPendingByCourier(ctx context.Context, courierID string) (*payout.PendingPayout, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payout.PendingPayout), args.Error(1)
}

type MockArchivedOrderRepository struct{ mock.Mock }

func (m *MockArchivedOrderRepository) Archive(ctx context.Context, d *delivery.ClaimedDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, title string, body string, tokens []string) error {
	args := m.Called(ctx, title, body, tokens)
	return args.Error(0)
}

// MockUoW backs every narrow UoW interface the handlers declare.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AvailableOrderRepository() ports.AvailableOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.AvailableOrderRepository)
}

func (m *MockUoW) ClaimedDeliveryRepository() ports.ClaimedDeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.ClaimedDeliveryRepository)
}

func (m *MockUoW) CompletedOrderRepository() ports.CompletedOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CompletedOrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) PayoutRepository() ports.PayoutRepository {
	args := m.Called()
	return args.Get(0).(ports.PayoutRepository)
}

func (m *MockUoW) ArchivedOrderRepository() ports.ArchivedOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchivedOrderRepository)
}

type MockAddOrderUoWFactory struct{ mock.Mock }

func (m *MockAddOrderUoWFactory) Create() commands.AddOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AddOrderUoW)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockCompleteUoWFactory struct{ mock.Mock }

func (m *MockCompleteUoWFactory) Create() commands.CompleteUoW {
	args := m.Called()
	return args.Get(0).(commands.CompleteUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockReconcileUoWFactory struct{ mock.Mock }

func (m *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconcileUoW)
}
