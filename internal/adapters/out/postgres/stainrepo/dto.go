// Package stainrepo provides data transfer objects and mapping functions for
// stain-treatment request persistence.
package stainrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stain"

	"github.com/google/uuid"
)

// StainRequestDTO represents the database structure for persisting
// stain-treatment request aggregates.
type StainRequestDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        *uuid.UUID `gorm:"type:uuid;index"`
	Garment        string
	Description    string
	ResolutionNote string
	Status         int `gorm:"index"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for stain-request entities.
func (StainRequestDTO) TableName() string {
	return "stain_requests"
}

// fromDomain converts a stain-request aggregate to its database representation.
func fromDomain(aggregate *stain.Request) StainRequestDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return StainRequestDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        orderID,
		Garment:        aggregate.Garment(),
		Description:    aggregate.Description(),
		ResolutionNote: aggregate.ResolutionNote(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a stain-request aggregate using RestoreRequest.
func toDomain(dto StainRequestDTO) (*stain.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		linked, linkErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		orderID = &linked
	}

	return stain.RestoreRequest(
		id, orderID, dto.Garment, dto.Description,
		stain.Status(dto.Status), dto.ResolutionNote, dto.CreatedAt)
}
