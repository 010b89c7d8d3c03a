package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/payout"
	"dispatch/internal/pkg/errs"
)

func buildCompletedRecord(t *testing.T, claim *delivery.ClaimedDelivery) *delivery.CompletedOrder {
	t.Helper()
	completed, err := claim.Complete(kernel.NewUUID(), time.Date(2025, 3, 10, 13, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	return completed
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	cmd, err := commands.NewCompleteDeliveryCommand(claim.ID())
	require.NoError(t, err)

	ordersRepo := new(MockAvailableOrderRepository)
	claimsRepo := new(MockClaimedDeliveryRepository)
	completedRepo := new(MockCompletedOrderRepository)
	courierRepo := new(MockCourierRepository)
	payoutRepo := new(MockPayoutRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("originClaimId", claim.ID())).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		completedRepo.On("Add", ctx, mock.AnythingOfType("*delivery.CompletedOrder")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, "drv-7").
			Return(nil, errs.NewObjectNotFoundError("courierId", "drv-7")).Once(),
		uow.On("PayoutRepository").Return(payoutRepo).Once(),
		payoutRepo.On("Accrue", ctx, mock.MatchedBy(func(a payout.Accrual) bool {
			return a.CourierID() == "drv-7" && a.Amount() == 40.0
		})).Return(nil).Once(),
		claimsRepo.On("Delete", ctx, claim.ID()).Return(nil).Once(),
		uow.On("AvailableOrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Delete", ctx, claim.OriginID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "O-100", result.OrderID)
	assert.Equal(t, 502.0, result.GrandTotal)
	assert.False(t, result.CompletedAt.IsZero())
	uow.AssertExpectations(t)
	payoutRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	earlier := buildCompletedRecord(t, claim)
	cmd, err := commands.NewCompleteDeliveryCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	completedRepo := new(MockCompletedOrderRepository)
	payoutRepo := new(MockPayoutRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).Return(earlier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	// repeat completion succeeds without a second accrual
	require.NoError(t, err)
	assert.Equal(t, earlier.ID(), result.CompletedID)
	assert.Equal(t, earlier.CompletedAt(), result.CompletedAt)
	payoutRepo.AssertNotCalled(t, "Accrue")
	claimsRepo.AssertNotCalled(t, "Get", ctx, claim.ID())
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ConcurrentRetry(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	earlier := buildCompletedRecord(t, claim)
	cmd, err := commands.NewCompleteDeliveryCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	completedRepo := new(MockCompletedOrderRepository)
	payoutRepo := new(MockPayoutRepository)
	uow := new(MockUoW)

	// the duplicate insert aborts the transaction; the handler must
	// roll back before re-reading the winner's record
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("originClaimId", claim.ID())).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		completedRepo.On("Add", ctx, mock.AnythingOfType("*delivery.CompletedOrder")).
			Return(errs.NewObjectAlreadyExistsError("originClaimId", claim.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).Return(earlier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, earlier.ID(), result.CompletedID)
	payoutRepo.AssertNotCalled(t, "Accrue")
	uow.AssertExpectations(t)
	completedRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ConcurrentRetryLookupFails(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	cmd, err := commands.NewCompleteDeliveryCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	completedRepo := new(MockCompletedOrderRepository)
	uow := new(MockUoW)

	lookupErr := errors.New("connection reset")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("originClaimId", claim.ID())).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		completedRepo.On("Add", ctx, mock.AnythingOfType("*delivery.CompletedOrder")).
			Return(errs.NewObjectAlreadyExistsError("originClaimId", claim.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).Return(nil, lookupErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	// never report success with an id that was not committed anywhere
	assert.ErrorIs(t, err, lookupErr)
	assert.Zero(t, result.CompletedID)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ClaimNotFound(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	cmd, err := commands.NewCompleteDeliveryCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	completedRepo := new(MockCompletedOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		uow.On("CompletedOrderRepository").Return(completedRepo).Once(),
		completedRepo.On("GetByOriginClaimID", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("originClaimId", claim.ID())).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("claimId", claim.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
