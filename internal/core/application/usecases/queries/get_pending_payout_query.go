package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingPayoutQueryIsNotConstructed = errors.New(
	"GetPendingPayoutQuery must be created via NewGetPendingPayoutQuery constructor",
)

// GetPendingPayoutQuery retrieves a courier's open earnings balance.
type GetPendingPayoutQuery struct {
	courierID string

	guard guard.ConstructorGuard
}

// NewGetPendingPayoutQuery creates a balance query for the given courier.
func NewGetPendingPayoutQuery(courierID string) (GetPendingPayoutQuery, error) {
	if courierID == "" {
		return GetPendingPayoutQuery{}, errs.NewValueIsRequiredError("courierId")
	}

	return GetPendingPayoutQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPayoutQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPayoutQueryIsNotConstructed)
}

// CourierID returns the courier whose balance is requested.
func (q GetPendingPayoutQuery) CourierID() string { return q.courierID }

// GetPendingPayoutQueryResponse is a courier's open balance. A courier with
// no accruals yet gets a zero balance, not an error.
type GetPendingPayoutQueryResponse struct {
	CourierID   string     `json:"courierId"`
	Amount      float64    `json:"amount"`
	Deliveries  int        `json:"deliveries"`
	Status      string     `json:"status"`
	LastOrderID string     `json:"lastOrderId,omitempty"`
	LastOrderAt *time.Time `json:"lastOrderAt,omitempty"`
}
