package payout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
)

func buildAccrual(t *testing.T, courierID string, amount float64, orderID string) Accrual {
	t.Helper()
	a, err := NewAccrual(courierID, "Ravi", "+917700000003", "026291800001191", "HDFC0000026",
		amount, orderID, time.Date(2025, 3, 10, 13, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	return a
}

func Test_NewAccrual(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := buildAccrual(t, "drv-7", 40, "O-100")

		assert.NoError(t, a.Validate())
		assert.Equal(t, "drv-7", a.CourierID())
		assert.Equal(t, 40.0, a.Amount())
		assert.Equal(t, "O-100", a.OrderID())
	})

	t.Run("requires courier id", func(t *testing.T) {
		_, err := NewAccrual("", "", "", "", "", 40, "O-100", time.Now())
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewAccrual("drv-7", "", "", "", "", -1, "O-100", time.Now())
		assert.Error(t, err)
	})

	t.Run("requires timestamp", func(t *testing.T) {
		_, err := NewAccrual("drv-7", "", "", "", "", 40, "O-100", time.Time{})
		assert.Error(t, err)
	})

	t.Run("contact and bank details are optional", func(t *testing.T) {
		a, err := NewAccrual("drv-7", "", "", "", "", 0, "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, 0.0, a.Amount())
	})
}

func Test_NewPendingPayout(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewPendingPayout(kernel.NewUUID(), buildAccrual(t, "drv-7", 40, "O-100"))
		require.NoError(t, err)

		assert.NoError(t, p.Validate())
		assert.Equal(t, "drv-7", p.CourierID())
		assert.Equal(t, "Ravi", p.CourierName())
		assert.Equal(t, "026291800001191", p.AccountNumber())
		assert.Equal(t, 40.0, p.Amount())
		assert.Equal(t, 1, p.Deliveries())
		assert.Equal(t, StatusPending, p.Status())
		assert.Equal(t, "O-100", p.LastOrderID())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewPendingPayout(kernel.UUID{}, buildAccrual(t, "drv-7", 40, "O-100"))
		assert.Error(t, err)
	})

	t.Run("unconstructed accrual", func(t *testing.T) {
		_, err := NewPendingPayout(kernel.NewUUID(), Accrual{})
		assert.ErrorIs(t, err, ErrAccrualIsNotConstructed)
	})
}

func Test_PendingPayout_Accrue(t *testing.T) {
	p, err := NewPendingPayout(kernel.NewUUID(), buildAccrual(t, "drv-7", 40, "O-100"))
	require.NoError(t, err)

	require.NoError(t, p.Accrue(buildAccrual(t, "drv-7", 35, "O-101")))
	assert.Equal(t, 75.0, p.Amount())
	assert.Equal(t, 2, p.Deliveries())
	assert.Equal(t, "O-101", p.LastOrderID())

	t.Run("rejects another courier's accrual", func(t *testing.T) {
		assert.Error(t, p.Accrue(buildAccrual(t, "drv-9", 30, "O-102")))
		assert.Equal(t, 75.0, p.Amount())
	})
}

func Test_PendingPayout_Accrue_OnPaidRow(t *testing.T) {
	p, err := RestorePendingPayout(kernel.NewUUID(), "drv-7", "Ravi", "+917700000003",
		"026291800001191", "HDFC0000026", 500, 12, StatusPaid, "O-090",
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Error(t, p.Accrue(buildAccrual(t, "drv-7", 40, "O-100")))
	assert.Equal(t, 500.0, p.Amount())
	assert.Equal(t, 12, p.Deliveries())
}

func Test_RestorePendingPayout(t *testing.T) {
	lastAt := time.Date(2025, 3, 10, 13, 15, 0, 0, time.UTC)

	p, err := RestorePendingPayout(kernel.NewUUID(), "drv-7", "Ravi", "+917700000003",
		"026291800001191", "HDFC0000026", 120, 3, StatusPending, "O-100", lastAt)
	require.NoError(t, err)

	assert.NoError(t, p.Validate())
	assert.Equal(t, 120.0, p.Amount())
	assert.Equal(t, 3, p.Deliveries())
	assert.Equal(t, "O-100", p.LastOrderID())
	assert.True(t, p.LastOrderAt().Equal(lastAt))

	_, err = RestorePendingPayout(kernel.NewUUID(), "drv-7", "", "", "", "", 120, 3, "Settling", "", lastAt)
	assert.Error(t, err)
}
