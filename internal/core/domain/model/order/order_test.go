package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewParty("U1", "Asha", "asha@example.com", "+911234567890")
	require.NoError(t, err)
	restaurant, err := order.NewParty("R1", "Spice Villa", "", "")
	require.NoError(t, err)

	item, err := order.NewLineItem("I1", "Paneer Tikka", 220, 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(2, 440, 22, 40, 502)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946, "https://maps.example.com/?q=12.9716,77.5946")
	require.NoError(t, err)
	destination, err := order.NewDestination(point, "12 MG Road, Bengaluru")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"O-100",
		customer,
		restaurant,
		[]order.LineItem{item},
		totals,
		order.NewPaymentRef("", "rzp_order_1", ""),
		destination,
		"Opp. City Mall, 1st floor",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_available_order", func(t *testing.T) {
		o := buildTestOrder(t)

		assert.Equal(t, order.Available, o.Status())
		assert.Nil(t, o.CourierID())
		assert.Empty(t, o.RejectedBy())
		assert.Equal(t, "O-100", o.OrderID())
		assert.Equal(t, "Pending", o.Payment().Status())
		require.NoError(t, o.Validate())
	})

	t.Run("requires_order_id", func(t *testing.T) {
		valid := buildTestOrder(t)

		_, err := order.NewOrder(
			kernel.NewUUID(), "",
			valid.Customer(), valid.Restaurant(), valid.Items(), valid.Totals(),
			valid.Payment(), valid.Destination(), valid.RestaurantPlace(), valid.PlacedAt(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_items", func(t *testing.T) {
		valid := buildTestOrder(t)

		_, err := order.NewOrder(
			kernel.NewUUID(), "O-101",
			valid.Customer(), valid.Restaurant(), nil, valid.Totals(),
			valid.Payment(), valid.Destination(), valid.RestaurantPlace(), valid.PlacedAt(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_record_id", func(t *testing.T) {
		valid := buildTestOrder(t)

		_, err := order.NewOrder(
			kernel.UUID{}, "O-101",
			valid.Customer(), valid.Restaurant(), valid.Items(), valid.Totals(),
			valid.Payment(), valid.Destination(), valid.RestaurantPlace(), valid.PlacedAt(),
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("sets_courier_and_status", func(t *testing.T) {
		o := buildTestOrder(t)

		require.NoError(t, o.Claim("C1"))

		assert.Equal(t, order.Claimed, o.Status())
		require.NotNil(t, o.CourierID())
		assert.Equal(t, "C1", *o.CourierID())
	})

	t.Run("rejects_empty_courier", func(t *testing.T) {
		o := buildTestOrder(t)
		require.ErrorIs(t, o.Claim(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects_double_claim", func(t *testing.T) {
		o := buildTestOrder(t)
		require.NoError(t, o.Claim("C1"))

		err := o.Claim("C2")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "C1", *o.CourierID())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("appends_courier", func(t *testing.T) {
		o := buildTestOrder(t)

		require.NoError(t, o.Reject("C1"))

		assert.True(t, o.IsRejectedBy("C1"))
		assert.False(t, o.IsRejectedBy("C2"))
	})

	t.Run("is_idempotent", func(t *testing.T) {
		o := buildTestOrder(t)

		require.NoError(t, o.Reject("C1"))
		require.NoError(t, o.Reject("C1"))

		assert.Equal(t, []string{"C1"}, o.RejectedBy())
	})

	t.Run("does_not_change_status", func(t *testing.T) {
		o := buildTestOrder(t)

		require.NoError(t, o.Reject("C1"))

		assert.Equal(t, order.Available, o.Status())
		assert.Nil(t, o.CourierID())
	})

	t.Run("rejects_empty_courier", func(t *testing.T) {
		o := buildTestOrder(t)
		require.ErrorIs(t, o.Reject(""), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_claimed_order", func(t *testing.T) {
		src := buildTestOrder(t)
		courierID := "C1"

		restored, err := order.RestoreOrder(
			src.ID(), src.OrderID(), src.Customer(), src.Restaurant(), src.Items(),
			src.Totals(), src.Payment(), src.Destination(), src.RestaurantPlace(), src.PlacedAt(),
			order.Claimed, &courierID, []string{"C2"},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Claimed, restored.Status())
		assert.Equal(t, "C1", *restored.CourierID())
		assert.True(t, restored.IsRejectedBy("C2"))
	})

	t.Run("rejects_available_with_courier", func(t *testing.T) {
		src := buildTestOrder(t)
		courierID := "C1"

		_, err := order.RestoreOrder(
			src.ID(), src.OrderID(), src.Customer(), src.Restaurant(), src.Items(),
			src.Totals(), src.Payment(), src.Destination(), src.RestaurantPlace(), src.PlacedAt(),
			order.Available, &courierID, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_claimed_without_courier", func(t *testing.T) {
		src := buildTestOrder(t)

		_, err := order.RestoreOrder(
			src.ID(), src.OrderID(), src.Customer(), src.Restaurant(), src.Items(),
			src.Totals(), src.Payment(), src.Destination(), src.RestaurantPlace(), src.PlacedAt(),
			order.Claimed, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
