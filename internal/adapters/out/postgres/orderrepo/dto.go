// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by fulfillment status and pickup schedule.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName        string
	ServiceID           string
	ServiceName         string
	EstimatedWeightLbs  int
	ItemQuantities      []byte `gorm:"type:jsonb"`
	PickupDate          time.Time `gorm:"type:date;index"`
	PickupTimeSlot      int
	Address             string
	ZipCode             string `gorm:"type:char(5)"`
	Zone                int
	SpecialInstructions string
	Subtotal            decimal.Decimal `gorm:"type:numeric(10,2)"`
	Surcharge           decimal.Decimal `gorm:"type:numeric(10,2)"`
	Total               decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status              int             `gorm:"index"`
	CreatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Item quantities are serialized to JSONB since they are never queried relationally.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.ItemQuantities())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerName:        aggregate.CustomerName(),
		ServiceID:           aggregate.ServiceID(),
		ServiceName:         aggregate.ServiceName(),
		EstimatedWeightLbs:  aggregate.EstimatedWeightLbs(),
		ItemQuantities:      items,
		PickupDate:          aggregate.PickupDate(),
		PickupTimeSlot:      int(aggregate.PickupTimeSlot()),
		Address:             aggregate.Address(),
		ZipCode:             aggregate.ZipCode().String(),
		Zone:                int(aggregate.Zone()),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Subtotal:            aggregate.Subtotal().Decimal(),
		Surcharge:           aggregate.Surcharge().Decimal(),
		Total:               aggregate.Total().Decimal(),
		Status:              int(aggregate.Status()),
		CreatedAt:           aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zip, err := kernel.NewZipCode(dto.ZipCode)
	if err != nil {
		return nil, err
	}

	var items map[string]int
	if len(dto.ItemQuantities) > 0 {
		if err = json.Unmarshal(dto.ItemQuantities, &items); err != nil {
			return nil, err
		}
	}

	subtotal, err := kernel.NewMoneyFromDecimal(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	surcharge, err := kernel.NewMoneyFromDecimal(dto.Surcharge)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}

	request := booking.OrderRequest{
		ServiceID:           dto.ServiceID,
		ServiceName:         dto.ServiceName,
		EstimatedWeightLbs:  dto.EstimatedWeightLbs,
		ItemQuantities:      items,
		PickupDate:          dto.PickupDate,
		PickupTimeSlot:      kernel.TimeSlot(dto.PickupTimeSlot),
		Address:             dto.Address,
		ZipCode:             zip,
		Zone:                kernel.Zone(dto.Zone),
		SpecialInstructions: dto.SpecialInstructions,
		Breakdown: services.PriceBreakdown{
			Subtotal:  subtotal,
			Surcharge: surcharge,
			Total:     total,
		},
	}

	return order.RestoreOrder(id, dto.CustomerName, request, order.Status(dto.Status), dto.CreatedAt)
}
