package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetPendingStainRequestsQueryIsNotConstructed = errors.New(
		"GetPendingStainRequestsQuery must be created via NewGetPendingStainRequestsQuery constructor",
	)
)

// GetPendingStainRequestsQuery retrieves all stain-treatment requests
// awaiting a staff decision, meaning those still Submitted or Reviewed.
type GetPendingStainRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingStainRequestsQuery creates a query for unresolved stain requests.
func NewGetPendingStainRequestsQuery() GetPendingStainRequestsQuery {
	return GetPendingStainRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingStainRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingStainRequestsQueryIsNotConstructed)
}

// GetPendingStainRequestsQueryResponse represents one unresolved request row.
type GetPendingStainRequestsQueryResponse struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	Garment     string
	Description string
	Status      string
	CreatedAt   time.Time
}
