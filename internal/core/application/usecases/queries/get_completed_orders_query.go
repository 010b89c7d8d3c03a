package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery retrieves a courier's delivery history.
type GetCompletedOrdersQuery struct {
	courierID string

	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a history query for the given courier.
func NewGetCompletedOrdersQuery(courierID string) (GetCompletedOrdersQuery, error) {
	if courierID == "" {
		return GetCompletedOrdersQuery{}, errs.NewValueIsRequiredError("courierId")
	}

	return GetCompletedOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose history is requested.
func (q GetCompletedOrdersQuery) CourierID() string { return q.courierID }

// GetCompletedOrdersQueryResponse is one finished delivery in the history.
type GetCompletedOrdersQueryResponse struct {
	ID                 kernel.UUID `json:"id"`
	OrderID            string      `json:"orderId"`
	RestaurantName     string      `json:"restaurantName"`
	Address            string      `json:"address"`
	GrandTotal         float64     `json:"grandTotal"`
	DeliveryFee        float64     `json:"deliveryFee"`
	VerificationStatus string      `json:"verificationStatus"`
	AcceptedAt         time.Time   `json:"acceptedAt"`
	CompletedAt        time.Time   `json:"completedAt"`
}
