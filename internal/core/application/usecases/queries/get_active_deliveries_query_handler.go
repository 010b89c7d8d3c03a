package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// GetActiveDeliveriesQueryHandler reads a courier's in-flight deliveries
// from the claimed pool.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active-delivery
// queries.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle returns the courier's claimed deliveries, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			customer_name,
			customer_phone,
			restaurant_name,
			restaurant_place,
			dest_address,
			dest_lat,
			dest_lng,
			dest_map_url,
			items,
			grand_total,
			picked_up,
			accepted_at
		FROM claimed_deliveries
		WHERE courier_id = ?
		ORDER BY accepted_at
	`, query.CourierID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id uuid.UUID
		var itemsDoc []byte

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.RestaurantName,
			&resp.RestaurantPlace,
			&resp.Address,
			&resp.Lat,
			&resp.Lng,
			&resp.MapURL,
			&itemsDoc,
			&resp.GrandTotal,
			&resp.PickedUp,
			&resp.AcceptedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID

		if len(itemsDoc) > 0 {
			if err := json.Unmarshal(itemsDoc, &resp.Items); err != nil {
				return nil, err
			}
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
