package booking

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
)

// OrderRequest is the finalized output of a booking session: a plain
// structured record handed to the checkout collaborator. It carries the
// service selection summary, the computed price breakdown, and the pickup
// details. No binary encoding, no wire format - downstream adapters shape
// it for persistence or transport.
type OrderRequest struct {
	ServiceID           string
	ServiceName         string
	EstimatedWeightLbs  int
	ItemQuantities      map[string]int
	PickupDate          time.Time
	PickupTimeSlot      kernel.TimeSlot
	Address             string
	ZipCode             kernel.ZipCode
	Zone                kernel.Zone
	SpecialInstructions string
	Breakdown           services.PriceBreakdown
}
