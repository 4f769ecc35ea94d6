package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by
// fulfillment state and pickup schedule.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are not yet delivered or
	// cancelled, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllForPickupDate retrieves all active orders scheduled for pickup
	// on the given calendar date.
	GetAllForPickupDate(ctx context.Context, date time.Time) ([]*order.Order, error)
}
