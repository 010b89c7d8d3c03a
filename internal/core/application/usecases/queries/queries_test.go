package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/queries"
)

func Test_NewGetAvailableOrdersQuery(t *testing.T) {
	q := queries.NewGetAvailableOrdersQuery("drv-7")
	assert.NoError(t, q.Validate())
	assert.Equal(t, "drv-7", q.CourierID())

	// empty courier id means an unfiltered feed
	q = queries.NewGetAvailableOrdersQuery("")
	assert.NoError(t, q.Validate())

	var zero queries.GetAvailableOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

func Test_NewGetActiveDeliveriesQuery(t *testing.T) {
	q, err := queries.NewGetActiveDeliveriesQuery("drv-7")
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetActiveDeliveriesQuery("")
	assert.Error(t, err)

	var zero queries.GetActiveDeliveriesQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetActiveDeliveriesQueryIsNotConstructed)
}

func Test_NewGetCompletedOrdersQuery(t *testing.T) {
	q, err := queries.NewGetCompletedOrdersQuery("drv-7")
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetCompletedOrdersQuery("")
	assert.Error(t, err)
}

func Test_NewGetPendingPayoutQuery(t *testing.T) {
	q, err := queries.NewGetPendingPayoutQuery("drv-7")
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetPendingPayoutQuery("")
	assert.Error(t, err)
}
