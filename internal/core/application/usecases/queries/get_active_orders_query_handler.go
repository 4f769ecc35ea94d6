package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out delivered and cancelled orders to show the active workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders that are not delivered or cancelled, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
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
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, order.Delivered, order.Cancelled).Rows()
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

// scanOrderRow maps one orders row onto the response model. Shared with the
// pickup-date query, which selects the same columns.
func scanOrderRow(rows interface {
	Scan(dest ...any) error
}) (GetActiveOrdersQueryResponse, error) {
	var (
		resp     GetActiveOrdersQueryResponse
		id       uuid.UUID
		status   int
		timeSlot int
		total    decimal.Decimal
	)

	if err := rows.Scan(
		&id,
		&resp.CustomerName,
		&resp.ServiceName,
		&status,
		&resp.PickupDate,
		&timeSlot,
		&total,
	); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	resp.PickupTimeSlot = kernel.TimeSlot(timeSlot)

	money, err := kernel.NewMoneyFromDecimal(total)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	resp.Total = money

	return resp, nil
}
