// Package archiverepo persists the restaurant-side archive written at pickup
// time. Records are write-once; a duplicate order id means an earlier pickup
// attempt already archived it.
package archiverepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// ArchivedOrderDTO represents the database structure for archived orders.
// The archive is a flat record for the restaurant's books, not an aggregate:
// nothing reads it back into the domain.
type ArchivedOrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID string    `gorm:"uniqueIndex"`

	CourierID    string
	CourierName  string
	CourierPhone string

	CustomerName   string
	RestaurantID   string `gorm:"index"`
	RestaurantName string

	Items      []byte `gorm:"type:jsonb"`
	GrandTotal float64

	PlacedAt   time.Time
	ArchivedAt time.Time
}

// TableName overrides GORM's default naming to use "archived_orders".
func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

type itemDoc struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// fromDomain flattens a claimed delivery into an archive record.
func fromDomain(aggregate *delivery.ClaimedDelivery, archivedAt time.Time) (ArchivedOrderDTO, error) {
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
		return ArchivedOrderDTO{}, err
	}

	courier := aggregate.Courier()

	return ArchivedOrderDTO{
		ID:      kernel.NewUUID().Bytes(),
		OrderID: snapshot.OrderID,

		CourierID:    courier.ID(),
		CourierName:  courier.Name(),
		CourierPhone: courier.Phone(),

		CustomerName:   snapshot.Customer.Name(),
		RestaurantID:   snapshot.Restaurant.ID(),
		RestaurantName: snapshot.Restaurant.Name(),

		Items:      items,
		GrandTotal: snapshot.Totals.GrandTotal(),

		PlacedAt:   snapshot.PlacedAt,
		ArchivedAt: archivedAt,
	}, nil
}
