package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingStainRequestsQueryHandler retrieves unresolved stain-treatment
// requests from the database for the staff review queue.
type GetPendingStainRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingStainRequestsQueryHandler creates a handler for pending
// stain-request queries.
func NewGetPendingStainRequestsQueryHandler(db *gorm.DB) GetPendingStainRequestsQueryHandler {
	return GetPendingStainRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all unresolved requests, oldest first.
func (h GetPendingStainRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingStainRequestsQuery,
) ([]GetPendingStainRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingStainRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			garment,
			description,
			status,
			created_at
		FROM stain_requests
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, stain.Submitted, stain.Reviewed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp    GetPendingStainRequestsQueryResponse
			id      uuid.UUID
			orderID *uuid.UUID
			status  int
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.Garment,
			&resp.Description,
			&status,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requestID

		if orderID != nil {
			linkedID, linkErr := kernel.UUIDFromBytes((*orderID)[:])
			if linkErr != nil {
				return nil, linkErr
			}
			resp.OrderID = &linkedID
		}

		resp.Status = stain.Status(status).String()
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
