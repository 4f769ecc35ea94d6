package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for an accepted laundry booking. It carries the
// finalized booking data plus the locked-in price breakdown, and manages the
// fulfillment lifecycle from intake through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a serviceable delivery address (valid zip, resolved zone)
//   - Pricing is captured at submission and never recomputed afterward
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the name collected at checkout
	customerName string

	// serviceID and serviceName describe the booked service
	serviceID   string
	serviceName string

	// estimatedWeightLbs is the customer's wash & fold weight estimate
	estimatedWeightLbs int

	// itemQuantities maps specialty item IDs to counts
	itemQuantities map[string]int

	// pickupDate and pickupTimeSlot describe the requested pickup window
	pickupDate     time.Time
	pickupTimeSlot kernel.TimeSlot

	// address, zipCode and zone describe the delivery destination
	address string
	zipCode kernel.ZipCode
	zone    kernel.Zone

	// specialInstructions holds free-form pickup notes
	specialInstructions string

	// subtotal, surcharge and total are the price locked in at submission
	subtotal  kernel.Money
	surcharge kernel.Money
	total     kernel.Money

	// status represents the current state in the fulfillment lifecycle
	status Status

	// createdAt is the submission timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order from a finalized booking request. This is the
// only way to create a valid Order for a fresh submission, ensuring all
// business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerName: Name collected at checkout (must be non-empty)
//   - request: The finalized booking produced by the wizard's review step
//   - createdAt: Submission timestamp (must be non-zero)
//
// Example:
//
//	request, _ := wizard.OrderRequest()
//	order, err := NewOrder(kernel.NewUUID(), "Ada Lovelace", request, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order is created
// with Received status.
func NewOrder(id kernel.UUID, customerName string, request booking.OrderRequest, createdAt time.Time) (*Order, error) {
	return newOrder(id, customerName, request, Received, createdAt)
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// It applies the same field validation as NewOrder but accepts any valid
// status, since stored orders may be anywhere in the lifecycle.
//
// This function is intended for repository implementations only; application
// code creates orders through NewOrder.
func RestoreOrder(id kernel.UUID, customerName string, request booking.OrderRequest, status Status, createdAt time.Time) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return newOrder(id, customerName, request, status, createdAt)
}

func newOrder(id kernel.UUID, customerName string, request booking.OrderRequest, status Status, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setService(request.ServiceID, request.ServiceName),
		order.setQuantities(request.EstimatedWeightLbs, request.ItemQuantities),
		order.setPickup(request.PickupDate, request.PickupTimeSlot),
		order.setDestination(request.Address, request.ZipCode, request.Zone),
		order.setPricing(request.Breakdown.Subtotal, request.Breakdown.Surcharge, request.Breakdown.Total),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	order.specialInstructions = request.SpecialInstructions
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer name collected at checkout.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ServiceID returns the booked service's catalog identifier.
func (o *Order) ServiceID() string {
	return o.serviceID
}

// ServiceName returns the booked service's display name.
func (o *Order) ServiceName() string {
	return o.serviceName
}

// EstimatedWeightLbs returns the customer's weight estimate in pounds.
func (o *Order) EstimatedWeightLbs() int {
	return o.estimatedWeightLbs
}

// ItemQuantities returns a copy of the specialty item counts.
func (o *Order) ItemQuantities() map[string]int {
	items := make(map[string]int, len(o.itemQuantities))
	for id, qty := range o.itemQuantities {
		items[id] = qty
	}
	return items
}

// PickupDate returns the requested pickup date.
func (o *Order) PickupDate() time.Time {
	return o.pickupDate
}

// PickupTimeSlot returns the requested pickup window.
func (o *Order) PickupTimeSlot() kernel.TimeSlot {
	return o.pickupTimeSlot
}

// Address returns the delivery street address.
func (o *Order) Address() string {
	return o.address
}

// ZipCode returns the delivery zip code.
func (o *Order) ZipCode() kernel.ZipCode {
	return o.zipCode
}

// Zone returns the delivery zone the order was classified into.
func (o *Order) Zone() kernel.Zone {
	return o.zone
}

// SpecialInstructions returns the free-form pickup notes.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Subtotal returns the pre-surcharge price locked in at submission.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Surcharge returns the delivery surcharge locked in at submission.
func (o *Order) Surcharge() kernel.Money {
	return o.surcharge
}

// Total returns the total price locked in at submission.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartProcessing marks the order as picked up and in the wash.
//
// Returns an error if the order is not in Received status.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady marks the order as finished and queued for delivery.
//
// Returns an error if the order is not in Processing status.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as returned to the customer.
//
// Returns an error if the order is not in Ready status. Delivered is the
// final state in the fulfillment lifecycle.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Only orders that are still Received or
// Processing can be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setService(serviceID, serviceName string) error {
	if serviceID == "" {
		return errs.NewValueIsRequiredError("serviceID")
	}
	if serviceName == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	o.serviceID = serviceID
	o.serviceName = serviceName
	return nil
}

func (o *Order) setQuantities(weightLbs int, itemQuantities map[string]int) error {
	if weightLbs < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedWeightLbs", fmt.Errorf("%d is negative", weightLbs))
	}

	items := make(map[string]int, len(itemQuantities))
	for id, qty := range itemQuantities {
		if qty <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"itemQuantities", fmt.Errorf("quantity %d for item %s is not positive", qty, id))
		}
		items[id] = qty
	}

	o.estimatedWeightLbs = weightLbs
	o.itemQuantities = items
	return nil
}

func (o *Order) setPickup(date time.Time, slot kernel.TimeSlot) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	o.pickupDate = date
	o.pickupTimeSlot = slot
	return nil
}

func (o *Order) setDestination(address string, zip kernel.ZipCode, zone kernel.Zone) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := zip.Validate(); err != nil {
		return err
	}
	if err := zone.Validate(); err != nil {
		return err
	}
	if !zone.IsServiceable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"zone", fmt.Errorf("%s is not a serviceable zone", zone.String()))
	}
	o.address = address
	o.zipCode = zip
	o.zone = zone
	return nil
}

func (o *Order) setPricing(subtotal, surcharge, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), surcharge.Validate(), total.Validate()); err != nil {
		return err
	}

	if !subtotal.Add(surcharge).IsEqual(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%s does not equal subtotal %s plus surcharge %s",
				total.String(), subtotal.String(), surcharge.String()))
	}

	o.subtotal = subtotal
	o.surcharge = surcharge
	o.total = total
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
