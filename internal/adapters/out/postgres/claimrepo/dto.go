// Package claimrepo persists in-flight claimed deliveries. The unique index
// on order_id is the arbitration mechanism for claim races: of any number of
// concurrent inserts for one order, exactly one commits.
package claimrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ClaimedDeliveryDTO represents the database structure for claimed
// deliveries.
type ClaimedDeliveryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginID uuid.UUID `gorm:"type:uuid;index"`
	OrderID  string    `gorm:"uniqueIndex"`

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

	AcceptedAt time.Time
	PickedUp   bool
}

// TableName overrides GORM's default naming to use "claimed_deliveries".
func (ClaimedDeliveryDTO) TableName() string {
	return "claimed_deliveries"
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

// fromDomain converts a claimed delivery to its database representation.
func fromDomain(aggregate *delivery.ClaimedDelivery) (ClaimedDeliveryDTO, error) {
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
		return ClaimedDeliveryDTO{}, err
	}

	rejectedBy, err := json.Marshal(snapshot.RejectedBy)
	if err != nil {
		return ClaimedDeliveryDTO{}, err
	}

	courier := aggregate.Courier()

	return ClaimedDeliveryDTO{
		ID:       aggregate.ID().Bytes(),
		OriginID: aggregate.OriginID().Bytes(),
		OrderID:  snapshot.OrderID,

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

		AcceptedAt: aggregate.AcceptedAt(),
		PickedUp:   aggregate.PickedUp(),
	}, nil
}

// toDomain converts a database DTO back to a claimed delivery.
func toDomain(dto ClaimedDeliveryDTO) (*delivery.ClaimedDelivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}

	snapshot, err := snapshotFromDTO(dto)
	if err != nil {
		return nil, err
	}

	courier, err := delivery.NewCourierRef(dto.CourierID, dto.CourierName, dto.CourierPhone)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreClaimedDelivery(id, originID, snapshot, courier, dto.AcceptedAt, dto.PickedUp)
}

func snapshotFromDTO(dto ClaimedDeliveryDTO) (delivery.Snapshot, error) {
	customer, err := order.NewParty(dto.Customer.ID, dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return delivery.Snapshot{}, err
	}
	restaurant, err := order.NewParty(dto.Restaurant.ID, dto.Restaurant.Name, dto.Restaurant.Email, dto.Restaurant.Phone)
	if err != nil {
		return delivery.Snapshot{}, err
	}

	var docs []itemDoc
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &docs); err != nil {
			return delivery.Snapshot{}, err
		}
	}
	items := make([]order.LineItem, 0, len(docs))
	for _, d := range docs {
		item, err := order.NewLineItem(d.ItemID, d.Name, d.UnitPrice, d.Quantity)
		if err != nil {
			return delivery.Snapshot{}, err
		}
		items = append(items, item)
	}

	totals, err := order.NewTotals(dto.ItemCount, dto.ItemTotal, dto.Tax, dto.DeliveryFee, dto.GrandTotal)
	if err != nil {
		return delivery.Snapshot{}, err
	}

	point, err := kernel.NewGeoPoint(dto.DestLat, dto.DestLng, dto.DestMapURL)
	if err != nil {
		return delivery.Snapshot{}, err
	}
	destination, err := order.NewDestination(point, dto.DestAddress)
	if err != nil {
		return delivery.Snapshot{}, err
	}

	var rejectedBy []string
	if len(dto.RejectedBy) > 0 {
		if err := json.Unmarshal(dto.RejectedBy, &rejectedBy); err != nil {
			return delivery.Snapshot{}, err
		}
	}

	return delivery.Snapshot{
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
	}, nil
}
