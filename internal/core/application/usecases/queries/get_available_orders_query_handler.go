package queries

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// GetAvailableOrdersQueryHandler reads the claimable pool for a courier's
// feed. Rejected-by filtering happens here rather than in SQL so the
// rejected list stays an opaque JSON document to the database.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for feed queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns every order still claimable by the requesting courier,
// newest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			restaurant_name,
			restaurant_place,
			dest_address,
			dest_lat,
			dest_lng,
			dest_map_url,
			items,
			grand_total,
			delivery_fee,
			rejected_by,
			placed_at
		FROM available_orders
		WHERE status = ?
		ORDER BY placed_at DESC
	`, order.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableOrdersQueryResponse
		var id uuid.UUID
		var itemsDoc, rejectedDoc []byte
		var placedAt time.Time

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.RestaurantName,
			&resp.RestaurantPlace,
			&resp.Address,
			&resp.Lat,
			&resp.Lng,
			&resp.MapURL,
			&itemsDoc,
			&resp.GrandTotal,
			&resp.DeliveryFee,
			&rejectedDoc,
			&placedAt,
		)
		if err != nil {
			return nil, err
		}

		var rejectedBy []string
		if len(rejectedDoc) > 0 {
			if err := json.Unmarshal(rejectedDoc, &rejectedBy); err != nil {
				return nil, err
			}
		}
		if query.CourierID() != "" && slices.Contains(rejectedBy, query.CourierID()) {
			continue
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
		resp.PlacedAt = placedAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
