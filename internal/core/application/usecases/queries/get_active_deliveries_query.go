package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves a courier's in-flight deliveries.
type GetActiveDeliveriesQuery struct {
	courierID string

	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates an active-deliveries query for the
// given courier.
func NewGetActiveDeliveriesQuery(courierID string) (GetActiveDeliveriesQuery, error) {
	if courierID == "" {
		return GetActiveDeliveriesQuery{}, errs.NewValueIsRequiredError("courierId")
	}

	return GetActiveDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetActiveDeliveriesQuery) CourierID() string { return q.courierID }

// GetActiveDeliveriesQueryResponse is one in-flight delivery.
type GetActiveDeliveriesQueryResponse struct {
	ID              kernel.UUID    `json:"id"`
	OrderID         string         `json:"orderId"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	RestaurantName  string         `json:"restaurantName"`
	RestaurantPlace string         `json:"restaurantPlace"`
	Address         string         `json:"address"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	MapURL          string         `json:"mapUrl"`
	Items           []ItemResponse `json:"items"`
	GrandTotal      float64        `json:"grandTotal"`
	PickedUp        bool           `json:"pickedUp"`
	AcceptedAt      time.Time      `json:"acceptedAt"`
}
