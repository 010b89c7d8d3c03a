package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func buildSourceOrder(t *testing.T) *order.Order {
	t.Helper()

	cust, err := order.NewParty("cust-1", "Asha", "asha@example.com", "+919800000001")
	require.NoError(t, err)
	rest, err := order.NewParty("rest-1", "Spice Route", "orders@spiceroute.in", "+918800000002")
	require.NoError(t, err)

	item, err := order.NewLineItem("itm-1", "Paneer Tikka", 220, 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(2, 440, 22, 40, 502)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946, "https://maps.example.com/p/abc")
	require.NoError(t, err)
	dest, err := order.NewDestination(point, "14 MG Road, Bengaluru")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"O-100",
		cust,
		rest,
		[]order.LineItem{item},
		totals,
		order.NewPaymentRef("Paid", "pay_ord_1", "pay_1"),
		dest,
		"Opp. City Mall, 1st floor",
		time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func buildCourierRef(t *testing.T) CourierRef {
	t.Helper()
	ref, err := NewCourierRef("drv-7", "Ravi", "+919900000007")
	require.NoError(t, err)
	return ref
}

func Test_NewCourierRef(t *testing.T) {
	t.Run("requires id", func(t *testing.T) {
		_, err := NewCourierRef("", "Ravi", "+919900000007")
		assert.Error(t, err)

		_, err = NewCourierRef("   ", "Ravi", "+919900000007")
		assert.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		ref, err := NewCourierRef("drv-7", "Ravi", "+919900000007")
		require.NoError(t, err)
		assert.Equal(t, "drv-7", ref.ID())
		assert.Equal(t, "Ravi", ref.Name())
		assert.NoError(t, ref.Validate())
	})

	t.Run("zero value fails validate", func(t *testing.T) {
		var ref CourierRef
		assert.ErrorIs(t, ref.Validate(), ErrCourierRefIsNotConstructed)
	})
}

func Test_NewClaimedDelivery(t *testing.T) {
	src := buildSourceOrder(t)
	courier := buildCourierRef(t)
	acceptedAt := time.Date(2025, 3, 10, 12, 35, 0, 0, time.UTC)

	t.Run("snapshots the order", func(t *testing.T) {
		claim, err := NewClaimedDelivery(kernel.NewUUID(), src, courier, acceptedAt)
		require.NoError(t, err)

		assert.NoError(t, claim.Validate())
		assert.True(t, claim.OriginID().IsEqual(src.ID()))
		assert.Equal(t, "O-100", claim.OrderID())
		assert.Equal(t, "drv-7", claim.Courier().ID())
		assert.Equal(t, acceptedAt, claim.AcceptedAt())
		assert.False(t, claim.PickedUp())

		snap := claim.Snapshot()
		assert.Equal(t, "Spice Route", snap.Restaurant.Name())
		assert.Len(t, snap.Items, 1)
		assert.Equal(t, 502.0, snap.Totals.GrandTotal())
		assert.Equal(t, "Opp. City Mall, 1st floor", snap.RestaurantPlace)
	})

	t.Run("nil order", func(t *testing.T) {
		_, err := NewClaimedDelivery(kernel.NewUUID(), nil, courier, acceptedAt)
		assert.Error(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewClaimedDelivery(kernel.UUID{}, src, courier, acceptedAt)
		assert.Error(t, err)
	})

	t.Run("zero accepted time", func(t *testing.T) {
		_, err := NewClaimedDelivery(kernel.NewUUID(), src, courier, time.Time{})
		assert.Error(t, err)
	})

	t.Run("unconstructed courier ref", func(t *testing.T) {
		_, err := NewClaimedDelivery(kernel.NewUUID(), src, CourierRef{}, acceptedAt)
		assert.Error(t, err)
	})
}

func Test_ClaimedDelivery_MarkPickedUp(t *testing.T) {
	claim, err := NewClaimedDelivery(kernel.NewUUID(), buildSourceOrder(t), buildCourierRef(t),
		time.Date(2025, 3, 10, 12, 35, 0, 0, time.UTC))
	require.NoError(t, err)

	claim.MarkPickedUp()
	assert.True(t, claim.PickedUp())

	// repeat is a no-op
	claim.MarkPickedUp()
	assert.True(t, claim.PickedUp())
}

func Test_ClaimedDelivery_Complete(t *testing.T) {
	acceptedAt := time.Date(2025, 3, 10, 12, 35, 0, 0, time.UTC)
	completedAt := time.Date(2025, 3, 10, 13, 10, 0, 0, time.UTC)

	claim, err := NewClaimedDelivery(kernel.NewUUID(), buildSourceOrder(t), buildCourierRef(t), acceptedAt)
	require.NoError(t, err)

	t.Run("produces completed record", func(t *testing.T) {
		completedID := kernel.NewUUID()
		completed, err := claim.Complete(completedID, completedAt)
		require.NoError(t, err)

		assert.NoError(t, completed.Validate())
		assert.True(t, completed.ID().IsEqual(completedID))
		assert.True(t, completed.OriginClaimID().IsEqual(claim.ID()))
		assert.True(t, completed.OriginOrderID().IsEqual(claim.OriginID()))
		assert.Equal(t, "O-100", completed.OrderID())
		assert.Equal(t, acceptedAt, completed.AcceptedAt())
		assert.Equal(t, completedAt, completed.CompletedAt())
		assert.Equal(t, VerificationVerified, completed.VerificationStatus())
		assert.Equal(t, completedAt, completed.VerifiedAt())
		assert.Equal(t, PaymentSettled, completed.PaymentStatus())
	})

	t.Run("zero completed time", func(t *testing.T) {
		_, err := claim.Complete(kernel.NewUUID(), time.Time{})
		assert.Error(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := claim.Complete(kernel.UUID{}, completedAt)
		assert.Error(t, err)
	})
}

func Test_RestoreClaimedDelivery(t *testing.T) {
	src := buildSourceOrder(t)
	snap, err := TakeSnapshot(src)
	require.NoError(t, err)

	claim, err := RestoreClaimedDelivery(
		kernel.NewUUID(),
		src.ID(),
		snap,
		buildCourierRef(t),
		time.Date(2025, 3, 10, 12, 35, 0, 0, time.UTC),
		true,
	)
	require.NoError(t, err)

	assert.NoError(t, claim.Validate())
	assert.True(t, claim.PickedUp())
	assert.Equal(t, "O-100", claim.OrderID())
}
