// Package availablerepo persists the Available-stage order pool. The DTO
// flattens the aggregate's value objects into columns; line items and the
// rejected-by list are stored as JSON documents.
package availablerepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for available orders.
type OrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID string    `gorm:"index"`

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

	Status     string  `gorm:"index"`
	CourierID  *string `gorm:"index"`
	RejectedBy []byte  `gorm:"type:jsonb"`

	PlacedAt time.Time
}

// TableName overrides GORM's default naming to use "available_orders".
func (OrderDTO) TableName() string {
	return "available_orders"
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

// itemDoc is the JSON shape of one line item. The keys match the wire format
// the read side returns, so feed queries can pass the document through.
type itemDoc struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

func marshalItems(items []order.LineItem) ([]byte, error) {
	docs := make([]itemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, itemDoc{
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}
	return json.Marshal(docs)
}

func unmarshalItems(doc []byte) ([]order.LineItem, error) {
	var docs []itemDoc
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &docs); err != nil {
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
	return items, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := marshalItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	rejectedBy, err := json.Marshal(aggregate.RejectedBy())
	if err != nil {
		return OrderDTO{}, err
	}

	totals := aggregate.Totals()
	payment := aggregate.Payment()
	destination := aggregate.Destination()

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID(),

		Customer:   partyFromDomain(aggregate.Customer()),
		Restaurant: partyFromDomain(aggregate.Restaurant()),

		Items: items,

		ItemCount:   totals.ItemCount(),
		ItemTotal:   totals.ItemTotal(),
		Tax:         totals.Tax(),
		DeliveryFee: totals.DeliveryFee(),
		GrandTotal:  totals.GrandTotal(),

		Payment: PaymentDTO{
			Status:            payment.Status(),
			ProviderOrderID:   payment.ProviderOrderID(),
			ProviderPaymentID: payment.ProviderPaymentID(),
		},

		DestLat:     destination.Point().Lat(),
		DestLng:     destination.Point().Lng(),
		DestMapURL:  destination.Point().MapURL(),
		DestAddress: destination.Address(),

		RestaurantPlace: aggregate.RestaurantPlace(),

		Status:     aggregate.Status().String(),
		CourierID:  aggregate.CourierID(),
		RejectedBy: rejectedBy,

		PlacedAt: aggregate.PlacedAt(),
	}, nil
}

func partyFromDomain(p order.Party) PartyDTO {
	return PartyDTO{
		ID:    p.ID(),
		Name:  p.Name(),
		Email: p.Email(),
		Phone: p.Phone(),
	}
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	items, err := unmarshalItems(dto.Items)
	if err != nil {
		return nil, err
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

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var rejectedBy []string
	if len(dto.RejectedBy) > 0 {
		if err := json.Unmarshal(dto.RejectedBy, &rejectedBy); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		customer,
		restaurant,
		items,
		totals,
		order.NewPaymentRef(dto.Payment.Status, dto.Payment.ProviderOrderID, dto.Payment.ProviderPaymentID),
		destination,
		dto.RestaurantPlace,
		dto.PlacedAt,
		status,
		dto.CourierID,
		rejectedBy,
	)
}
