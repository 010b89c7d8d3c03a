package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func buildTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewParty("cust-1", "Asha", "asha@example.com", "+919800000001")
	require.NoError(t, err)
	restaurant, err := order.NewParty("rest-1", "Spice Route", "orders@spiceroute.in", "+918800000002")
	require.NoError(t, err)

	item, err := order.NewLineItem("itm-1", "Paneer Tikka", 220, 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(2, 440, 22, 40, 502)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946, "https://maps.example.com/p/abc")
	require.NoError(t, err)
	destination, err := order.NewDestination(point, "14 MG Road, Bengaluru")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"O-100",
		customer,
		restaurant,
		[]order.LineItem{item},
		totals,
		order.NewPaymentRef("Paid", "pay_ord_1", "pay_1"),
		destination,
		"Opp. City Mall, 1st floor",
		time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func buildTestClaim(t *testing.T, courierID string) *delivery.ClaimedDelivery {
	t.Helper()

	ref, err := delivery.NewCourierRef(courierID, "Ravi", "+919900000007")
	require.NoError(t, err)

	claim, err := delivery.NewClaimedDelivery(
		kernel.NewUUID(),
		buildTestOrder(t),
		ref,
		time.Date(2025, 3, 10, 12, 35, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return claim
}
