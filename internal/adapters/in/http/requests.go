package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// PartyRequest carries customer or restaurant contact details.
type PartyRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ItemRequest is one order line.
type ItemRequest struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// TotalsRequest carries the priced totals of the order.
type TotalsRequest struct {
	ItemCount   int     `json:"itemCount"`
	ItemTotal   float64 `json:"itemTotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

// PaymentRequest references the upstream payment.
type PaymentRequest struct {
	Status            string `json:"status"`
	ProviderOrderID   string `json:"providerOrderId"`
	ProviderPaymentID string `json:"providerPaymentId"`
}

// DestinationRequest is the drop-off location.
type DestinationRequest struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	MapURL  string  `json:"mapUrl"`
	Address string  `json:"address"`
}

// AddOrderRequest publishes a restaurant-accepted order to the courier pool.
type AddOrderRequest struct {
	OrderID         string             `json:"orderId"`
	Customer        PartyRequest       `json:"customer"`
	Restaurant      PartyRequest       `json:"restaurant"`
	Items           []ItemRequest      `json:"items"`
	Totals          TotalsRequest      `json:"totals"`
	Payment         PaymentRequest     `json:"payment"`
	Destination     DestinationRequest `json:"destination"`
	RestaurantPlace string             `json:"restaurantPlace"`
	PlacedAt        time.Time          `json:"placedAt"`
}

func (r AddOrderRequest) toCommand() (commands.AddAvailableOrderCommand, error) {
	customer, err := order.NewParty(r.Customer.ID, r.Customer.Name, r.Customer.Email, r.Customer.Phone)
	if err != nil {
		return commands.AddAvailableOrderCommand{}, err
	}

	restaurant, err := order.NewParty(r.Restaurant.ID, r.Restaurant.Name, r.Restaurant.Email, r.Restaurant.Phone)
	if err != nil {
		return commands.AddAvailableOrderCommand{}, err
	}

	items := make([]order.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		lineItem, err := order.NewLineItem(item.ItemID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return commands.AddAvailableOrderCommand{}, err
		}
		items = append(items, lineItem)
	}

	totals, err := order.NewTotals(r.Totals.ItemCount, r.Totals.ItemTotal, r.Totals.Tax, r.Totals.DeliveryFee, r.Totals.GrandTotal)
	if err != nil {
		return commands.AddAvailableOrderCommand{}, err
	}

	point, err := kernel.NewGeoPoint(r.Destination.Lat, r.Destination.Lng, r.Destination.MapURL)
	if err != nil {
		return commands.AddAvailableOrderCommand{}, err
	}

	destination, err := order.NewDestination(point, r.Destination.Address)
	if err != nil {
		return commands.AddAvailableOrderCommand{}, err
	}

	placedAt := r.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}

	return commands.NewAddAvailableOrderCommand(
		kernel.NewUUID(),
		r.OrderID,
		customer,
		restaurant,
		items,
		totals,
		order.NewPaymentRef(r.Payment.Status, r.Payment.ProviderOrderID, r.Payment.ProviderPaymentID),
		destination,
		r.RestaurantPlace,
		placedAt,
	)
}

// ClaimOrderRequest is a courier's attempt to take an available order.
type ClaimOrderRequest struct {
	OrderID      string `json:"orderId"`
	CourierID    string `json:"courierId"`
	CourierName  string `json:"courierName"`
	CourierPhone string `json:"courierPhone"`
}

// RejectOrderRequest hides an order from one courier's feed.
type RejectOrderRequest struct {
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

// ClaimRef addresses an active claimed delivery.
type ClaimRef struct {
	ClaimID string `json:"claimId"`
}

// CourierStatusRequest toggles a courier's availability.
type CourierStatusRequest struct {
	CourierID string `json:"courierId"`
	IsActive  bool   `json:"isActive"`
}

// NotifyTokenRequest registers a courier device token.
type NotifyTokenRequest struct {
	CourierID string `json:"courierId"`
	Token     string `json:"token"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}
