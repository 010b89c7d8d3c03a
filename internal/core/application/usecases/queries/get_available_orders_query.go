// Package queries contains read-only operations over the dispatch store.
// Query handlers read with raw SQL straight into response structs, bypassing
// the aggregates, since no invariants are at stake on the read path.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the claimable order feed for a courier.
// Orders the courier has rejected are filtered out of their feed; an empty
// courier id returns the unfiltered pool.
type GetAvailableOrdersQuery struct {
	courierID string

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a feed query for the given courier.
func NewGetAvailableOrdersQuery(courierID string) GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose feed is requested.
func (q GetAvailableOrdersQuery) CourierID() string { return q.courierID }

// ItemResponse is one ordered dish inside a feed entry.
type ItemResponse struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// GetAvailableOrdersQueryResponse is one claimable order in the feed.
type GetAvailableOrdersQueryResponse struct {
	ID              kernel.UUID    `json:"id"`
	OrderID         string         `json:"orderId"`
	RestaurantName  string         `json:"restaurantName"`
	RestaurantPlace string         `json:"restaurantPlace"`
	Address         string         `json:"address"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	MapURL          string         `json:"mapUrl"`
	Items           []ItemResponse `json:"items"`
	GrandTotal      float64        `json:"grandTotal"`
	DeliveryFee     float64        `json:"deliveryFee"`
	PlacedAt        time.Time      `json:"placedAt"`
}
