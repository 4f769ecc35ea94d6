package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersForPickupDateQueryHandler retrieves the day's scheduled pickups
// from the database. Reuses the active-orders response shape since both back
// the same admin views.
type GetOrdersForPickupDateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForPickupDateQueryHandler creates a handler for pickup date queries.
func NewGetOrdersForPickupDateQueryHandler(db *gorm.DB) GetOrdersForPickupDateQueryHandler {
	return GetOrdersForPickupDateQueryHandler{db: db}
}

// Handle executes the query to retrieve active orders scheduled for the
// query's calendar date, ordered by pickup time slot.
func (h GetOrdersForPickupDateQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForPickupDateQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			service_name,
			status,
			pickup_date,
			pickup_time_slot,
			total
		FROM orders
		WHERE pickup_date = ?
		  AND status NOT IN (?, ?)
		ORDER BY pickup_time_slot, created_at
	`, query.Date().Format("2006-01-02"), order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
