// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregate repositories, and return flat response models shaped for display.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders still in the fulfillment
// pipeline. Returns orders that are not yet delivered or cancelled, for the
// admin dashboard.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches all non-final orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one in-flight order row.
// Contains the data the admin dashboard lists per order.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerName   string
	ServiceName    string
	Status         string
	PickupDate     time.Time
	PickupTimeSlot kernel.TimeSlot
	Total          kernel.Money
}
