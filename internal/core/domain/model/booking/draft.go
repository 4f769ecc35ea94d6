package booking

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrDraftIsNotConstructed is returned when a Draft instance was not created
// through the NewDraft factory method.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Draft is the single mutable entity owned by the booking wizard for the
// lifetime of one booking session. It accumulates the customer's inputs
// step by step and is discarded - never persisted - when the session ends,
// either by submission or by navigating away.
//
// Invariants:
//   - The selected service is always one of the three bookable services.
//   - The zone is reset to unknown whenever the zip code changes; it only
//     becomes resolved again through reclassification.
//   - Weight and item quantities are mutually exclusive in effect: pricing
//     reads exactly the field matching the selected service.
type Draft struct {
	zipCode             kernel.ZipCode
	zipCodeSet          bool
	address             string
	selectedServiceID   string
	estimatedWeightLbs  int
	itemQuantities      map[string]int
	pickupDate          time.Time
	pickupTimeSlot      kernel.TimeSlot
	specialInstructions string
	zone                kernel.Zone

	isConstructed bool
}

// NewDraft creates an empty draft with the given service preselected.
// The service must be one of the bookable service ids.
func NewDraft(selectedServiceID string) (*Draft, error) {
	draft := &Draft{
		itemQuantities: make(map[string]int),
		zone:           kernel.ZoneUnknown,
		pickupTimeSlot: kernel.TimeSlotUnknown,
		isConstructed:  true,
	}

	if err := draft.SelectService(selectedServiceID); err != nil {
		return nil, err
	}

	return draft, nil
}

// Validate ensures the Draft instance was properly constructed through NewDraft.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// SetZipCode stores a new delivery zip code and resets the zone to unknown.
// The previous classification is stale the moment the zip changes; the wizard
// reclassifies immediately after.
func (d *Draft) SetZipCode(zip kernel.ZipCode) error {
	if err := zip.Validate(); err != nil {
		return err
	}

	d.zipCode = zip
	d.zipCodeSet = true
	d.zone = kernel.ZoneUnknown
	return nil
}

// SetZone records the classification computed for the current zip code.
func (d *Draft) SetZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	d.zone = zone
	return nil
}

// SetAddress stores the street address.
func (d *Draft) SetAddress(address string) {
	d.address = address
}

// SelectService switches the draft to one of the bookable services.
// Previously entered weight and item quantities are preserved: pricing only
// reads the field matching the current selection, and a customer flipping
// between tabs should not lose input.
func (d *Draft) SelectService(serviceID string) error {
	switch serviceID {
	case catalog.ServiceStudentSpecial, catalog.ServiceWashFold, catalog.ServiceSpecialty:
		d.selectedServiceID = serviceID
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"selectedServiceId", fmt.Errorf("%q is not a bookable service", serviceID))
	}
}

// SetEstimatedWeight stores the estimated wash & fold weight in pounds.
// Negative weights are rejected outright; zero is representable (nothing
// entered yet) but blocks advancing past the services step.
func (d *Draft) SetEstimatedWeight(lbs int) error {
	if lbs < 0 {
		return errs.NewValueIsOutOfRangeError("estimatedWeightLbs", lbs, 0, 999)
	}

	d.estimatedWeightLbs = lbs
	return nil
}

// SetItemQuantity stores the count for one specialty item.
// A zero quantity removes the item from the draft.
func (d *Draft) SetItemQuantity(itemID string, quantity int) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemId")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, 99)
	}

	if quantity == 0 {
		delete(d.itemQuantities, itemID)
		return nil
	}
	d.itemQuantities[itemID] = quantity
	return nil
}

// SetPickupDate stores the requested pickup date.
func (d *Draft) SetPickupDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}

	d.pickupDate = date
	return nil
}

// SetPickupTimeSlot stores the requested pickup window.
func (d *Draft) SetPickupTimeSlot(slot kernel.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	d.pickupTimeSlot = slot
	return nil
}

// SetSpecialInstructions stores free-form instructions for the pickup.
func (d *Draft) SetSpecialInstructions(instructions string) {
	d.specialInstructions = instructions
}

// ZipCode returns the delivery zip code and whether one has been entered.
func (d *Draft) ZipCode() (kernel.ZipCode, bool) {
	return d.zipCode, d.zipCodeSet
}

// Address returns the street address.
func (d *Draft) Address() string {
	return d.address
}

// SelectedServiceID returns the currently selected bookable service.
func (d *Draft) SelectedServiceID() string {
	return d.selectedServiceID
}

// EstimatedWeightLbs returns the estimated wash & fold weight.
// Only meaningful when the selected service is wash & fold.
func (d *Draft) EstimatedWeightLbs() int {
	return d.estimatedWeightLbs
}

// ItemQuantities returns a copy of the specialty item counts.
// Only meaningful when the selected service is specialty.
func (d *Draft) ItemQuantities() map[string]int {
	quantities := make(map[string]int, len(d.itemQuantities))
	for id, qty := range d.itemQuantities {
		quantities[id] = qty
	}
	return quantities
}

// PickupDate returns the requested pickup date (zero if not set).
func (d *Draft) PickupDate() time.Time {
	return d.pickupDate
}

// PickupTimeSlot returns the requested pickup window.
func (d *Draft) PickupTimeSlot() kernel.TimeSlot {
	return d.pickupTimeSlot
}

// SpecialInstructions returns the free-form pickup instructions.
func (d *Draft) SpecialInstructions() string {
	return d.specialInstructions
}

// Zone returns the current zone classification for the draft's zip code.
// ZoneUnknown until the wizard has classified the entered zip.
func (d *Draft) Zone() kernel.Zone {
	return d.zone
}
