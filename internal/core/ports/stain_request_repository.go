package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stain"
)

// StainRequestRepository defines the persistence contract for stain-treatment
// request aggregates.
type StainRequestRepository interface {
	// Add persists a new stain-treatment request.
	Add(ctx context.Context, aggregate *stain.Request) error

	// Update persists changes to an existing request.
	Update(ctx context.Context, aggregate *stain.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stain.Request, error)

	// GetAllPending retrieves all requests awaiting resolution, meaning
	// those still in Submitted or Reviewed status, oldest first.
	GetAllPending(ctx context.Context) ([]*stain.Request, error)
}
