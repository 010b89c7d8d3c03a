package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"
)

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	cmd, err := commands.NewMarkPickedUpCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	archiveRepo := new(MockArchivedOrderRepository)
	ordersRepo := new(MockAvailableOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("ArchivedOrderRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Archive", ctx, claim).Return(nil).Once(),
		uow.On("AvailableOrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Delete", ctx, claim.OriginID()).Return(nil).Once(),
		claimsRepo.On("Update", ctx, claim).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, claim.PickedUp())
	uow.AssertExpectations(t)
}

func TestMarkPickedUpCommandHandler_Handle_Repeat(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	claim.MarkPickedUp()
	cmd, err := commands.NewMarkPickedUpCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	archiveRepo := new(MockArchivedOrderRepository)
	ordersRepo := new(MockAvailableOrderRepository)
	uow := new(MockUoW)

	// an earlier attempt already archived the order and removed the
	// origin; both writes are silent no-ops the second time around
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("ArchivedOrderRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Archive", ctx, claim).Return(nil).Once(),
		uow.On("AvailableOrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Delete", ctx, claim.OriginID()).Return(nil).Once(),
		claimsRepo.On("Update", ctx, claim).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, claim.PickedUp())
	uow.AssertExpectations(t)
}

func TestMarkPickedUpCommandHandler_Handle_ClaimNotFound(t *testing.T) {
	ctx := t.Context()

	claim := buildTestClaim(t, "drv-7")
	cmd, err := commands.NewMarkPickedUpCommand(claim.ID())
	require.NoError(t, err)

	claimsRepo := new(MockClaimedDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClaimedDeliveryRepository").Return(claimsRepo).Once(),
		claimsRepo.On("Get", ctx, claim.ID()).
			Return(nil, errs.NewObjectNotFoundError("claimId", claim.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
