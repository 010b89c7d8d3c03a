// Package completedrepo persists the immutable completion log. The unique
// index on origin_claim_id makes completion write-once per claim, which is
// the backstop for idempotent completion retries.
package completedrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CompletedOrderDTO represents the database structure for completed orders.
type CompletedOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginClaimID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OriginOrderID uuid.UUID `gorm:"type:uuid"`
	OrderID       string    `gorm:"index"`

	CourierID    string `gorm:"index"`
	CourierName  string
	CourierPhone string

	Customer   PartyDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Restaurant PartyDTO `gorm:"embedded;embeddedPrefix:restaurant_"`

	Items []byte `gorm:"type:jsonb"`

	ItemCount   int
	ItemTotal   float64
	Tax         float64
	DeliveryFee float64
	GrandTotal  float64

	Payment PaymentDTO `gorm:"embedded;embeddedPrefix:payment_"`

	DestLat     float64
	DestLng     float64
	DestMapURL  string
	DestAddress string

	RestaurantPlace string
	RejectedBy      []byte `gorm:"type:jsonb"`
	PlacedAt        time.Time

	AcceptedAt  time.Time
	CompletedAt time.Time `gorm:"index"`

	VerificationStatus string
	VerifiedAt         time.Time
	SettlementStatus   string
}

// TableName overrides GORM's default naming to use "completed_orders".
func (CompletedOrderDTO) TableName() string {
	return "completed_orders"
}

// PartyDTO is an embedded customer or restaurant reference.
type PartyDTO struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// PaymentDTO is the embedded payment-provider reference.
type PaymentDTO struct {
	Status            string
	ProviderOrderID   string
	ProviderPaymentID string
}

type itemDoc struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// fromDomain converts a completed order to its database representation.
func fromDomain(aggregate *delivery.CompletedOrder) (CompletedOrderDTO, error) {
	snapshot := aggregate.Snapshot()

	docs := make([]itemDoc, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		docs = append(docs, itemDoc{
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}
	items, err := json.Marshal(docs)
	if err != nil {
		return CompletedOrderDTO{}, err
	}

	rejectedBy, err := json.Marshal(snapshot.RejectedBy)
	if err != nil {
		return CompletedOrderDTO{}, err
	}

	courier := aggregate.Courier()

	return CompletedOrderDTO{
		ID:            aggregate.ID().Bytes(),
		OriginClaimID: aggregate.OriginClaimID().Bytes(),
		OriginOrderID: aggregate.OriginOrderID().Bytes(),
		OrderID:       snapshot.OrderID,

		CourierID:    courier.ID(),
		CourierName:  courier.Name(),
		CourierPhone: courier.Phone(),

		Customer: PartyDTO{
			ID:    snapshot.Customer.ID(),
			Name:  snapshot.Customer.Name(),
			Email: snapshot.Customer.Email(),
			Phone: snapshot.Customer.Phone(),
		},
		Restaurant: PartyDTO{
			ID:    snapshot.Restaurant.ID(),
			Name:  snapshot.Restaurant.Name(),
			Email: snapshot.Restaurant.Email(),
			Phone: snapshot.Restaurant.Phone(),
		},

		Items: items,

		ItemCount:   snapshot.Totals.ItemCount(),
		ItemTotal:   snapshot.Totals.ItemTotal(),
		Tax:         snapshot.Totals.Tax(),
		DeliveryFee: snapshot.Totals.DeliveryFee(),
		GrandTotal:  snapshot.Totals.GrandTotal(),

		Payment: PaymentDTO{
			Status:            snapshot.Payment.Status(),
			ProviderOrderID:   snapshot.Payment.ProviderOrderID(),
			ProviderPaymentID: snapshot.Payment.ProviderPaymentID(),
		},

		DestLat:     snapshot.Destination.Point().Lat(),
		DestLng:     snapshot.Destination.Point().Lng(),
		DestMapURL:  snapshot.Destination.Point().MapURL(),
		DestAddress: snapshot.Destination.Address(),

		RestaurantPlace: snapshot.RestaurantPlace,
		RejectedBy:      rejectedBy,
		PlacedAt:        snapshot.PlacedAt,

		AcceptedAt:  aggregate.AcceptedAt(),
		CompletedAt: aggregate.CompletedAt(),

		VerificationStatus: aggregate.VerificationStatus(),
		VerifiedAt:         aggregate.VerifiedAt(),
		SettlementStatus:   aggregate.PaymentStatus(),
	}, nil
}

// toDomain converts a database DTO back to a completed order.
func toDomain(dto CompletedOrderDTO) (*delivery.CompletedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originClaimID, err := kernel.UUIDFromBytes(dto.OriginClaimID[:])
	if err != nil {
		return nil, err
	}
	originOrderID, err := kernel.UUIDFromBytes(dto.OriginOrderID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewParty(dto.Customer.ID, dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}
	restaurant, err := order.NewParty(dto.Restaurant.ID, dto.Restaurant.Name, dto.Restaurant.Email, dto.Restaurant.Phone)
	if err != nil {
		return nil, err
	}

	var docs []itemDoc
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &docs); err != nil {
			return nil, err
		}
	}
	items := make([]order.LineItem, 0, len(docs))
	for _, d := range docs {
		item, err := order.NewLineItem(d.ItemID, d.Name, d.UnitPrice, d.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	totals, err := order.NewTotals(dto.ItemCount, dto.ItemTotal, dto.Tax, dto.DeliveryFee, dto.GrandTotal)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.DestLat, dto.DestLng, dto.DestMapURL)
	if err != nil {
		return nil, err
	}
	destination, err := order.NewDestination(point, dto.DestAddress)
	if err != nil {
		return nil, err
	}

	var rejectedBy []string
	if len(dto.RejectedBy) > 0 {
		if err := json.Unmarshal(dto.RejectedBy, &rejectedBy); err != nil {
			return nil, err
		}
	}

	courier, err := delivery.NewCourierRef(dto.CourierID, dto.CourierName, dto.CourierPhone)
	if err != nil {
		return nil, err
	}

	snapshot := delivery.Snapshot{
		OrderID:         dto.OrderID,
		Customer:        customer,
		Restaurant:      restaurant,
		Items:           items,
		Totals:          totals,
		Payment:         order.NewPaymentRef(dto.Payment.Status, dto.Payment.ProviderOrderID, dto.Payment.ProviderPaymentID),
		Destination:     destination,
		RestaurantPlace: dto.RestaurantPlace,
		RejectedBy:      rejectedBy,
		PlacedAt:        dto.PlacedAt,
	}

	return delivery.RestoreCompletedOrder(
		id,
		originClaimID,
		originOrderID,
		snapshot,
		courier,
		dto.AcceptedAt,
		dto.CompletedAt,
		dto.VerificationStatus,
		dto.VerifiedAt,
		dto.SettlementStatus,
	)
}
