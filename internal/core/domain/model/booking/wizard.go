package booking

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

var (
	// ErrWizardIsNotConstructed is returned when a Wizard instance was not
	// created through the NewWizard factory method.
	ErrWizardIsNotConstructed = errors.New("Wizard must be created via NewWizard constructor")

	// ErrOutsideServiceArea is returned by Advance when the entered zip code
	// classifies outside both service-area lists. The wizard stays on the
	// location step; the caller surfaces the rejection to the customer.
	ErrOutsideServiceArea = errors.New("address is outside the service area")

	// ErrWeightRequired is returned by Advance when wash & fold is selected
	// without a positive estimated weight.
	ErrWeightRequired = errors.New("estimated weight is required")

	// ErrItemsRequired is returned by Advance when specialty is selected
	// without any items.
	ErrItemsRequired = errors.New("at least one specialty item is required")

	// ErrEditOnlyFromReview is returned by JumpTo when invoked from any step
	// other than Review, or targeting a non-earlier step.
	ErrEditOnlyFromReview = errors.New("edit jumps are only allowed from the review step")
)

// Wizard drives one booking session through the Location -> Services ->
// Schedule -> Review flow. It owns the session's Draft, validates step
// transitions, and recomputes zone classification and pricing for live
// display as inputs change.
//
// The wizard is single-session and single-threaded: it is driven entirely by
// synchronous user actions, has no suspension or cancellation semantics, and
// is simply discarded (draft included) when the customer closes it. It is not
// safe for concurrent use and does not need to be.
//
// Example:
//
//	wizard, _ := booking.NewWizard(cat, classifier, engine, false)
//	if err := wizard.SetZipCode("43606"); err != nil {
//	    // invalid zip format, surface inline
//	}
//	wizard.SetAddress("123 Main St")
//	if err := wizard.Advance(); err != nil {
//	    // outside the service area, stay on Location
//	}
type Wizard struct {
	draft      *Draft
	step       Step
	catalog    catalog.Catalog
	classifier services.ZoneClassifier
	engine     services.PricingEngine

	isConstructed bool
}

// NewWizard starts a new booking session at the location step with an empty
// draft. The service is preselected to student-special when the session was
// entered via a student entry flag, and to wash & fold otherwise.
func NewWizard(
	cat catalog.Catalog,
	classifier services.ZoneClassifier,
	engine services.PricingEngine,
	studentEntry bool,
) (*Wizard, error) {
	serviceID := catalog.ServiceWashFold
	if studentEntry {
		serviceID = catalog.ServiceStudentSpecial
	}

	draft, err := NewDraft(serviceID)
	if err != nil {
		return nil, err
	}

	return &Wizard{
		draft:         draft,
		step:          StepLocation,
		catalog:       cat,
		classifier:    classifier,
		engine:        engine,
		isConstructed: true,
	}, nil
}

// Validate ensures the Wizard instance was properly constructed through NewWizard.
func (w *Wizard) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWizardIsNotConstructed
	}
	return nil
}

// Step returns the wizard's current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns the session's booking draft.
func (w *Wizard) Draft() *Draft {
	return w.draft
}

// SetZipCode parses and stores a new delivery zip code, then immediately
// reclassifies it so the zone (and any surcharge) is up to date for display.
// A malformed zip is rejected before anything changes on the draft.
func (w *Wizard) SetZipCode(raw string) error {
	zip, err := kernel.NewZipCode(raw)
	if err != nil {
		return err
	}

	if err = w.draft.SetZipCode(zip); err != nil {
		return err
	}

	zone, _, err := w.classifier.Classify(zip)
	if err != nil {
		return err
	}
	return w.draft.SetZone(zone)
}

// SetAddress stores the street address on the draft.
func (w *Wizard) SetAddress(address string) {
	w.draft.SetAddress(address)
}

// SelectService switches the draft's selected service.
func (w *Wizard) SelectService(serviceID string) error {
	return w.draft.SelectService(serviceID)
}

// SetEstimatedWeight stores the wash & fold weight estimate.
func (w *Wizard) SetEstimatedWeight(lbs int) error {
	return w.draft.SetEstimatedWeight(lbs)
}

// SetItemQuantity stores one specialty item count.
func (w *Wizard) SetItemQuantity(itemID string, quantity int) error {
	return w.draft.SetItemQuantity(itemID, quantity)
}

// SetPickupDate stores the requested pickup date.
func (w *Wizard) SetPickupDate(date time.Time) error {
	return w.draft.SetPickupDate(date)
}

// SetPickupTimeSlot stores the requested pickup window.
func (w *Wizard) SetPickupTimeSlot(slot kernel.TimeSlot) error {
	return w.draft.SetPickupTimeSlot(slot)
}

// SetSpecialInstructions stores free-form pickup instructions.
func (w *Wizard) SetSpecialInstructions(instructions string) {
	w.draft.SetSpecialInstructions(instructions)
}

// Advance moves one step forward after validating the current step's inputs.
// On rejection the wizard does not move and the draft is untouched; the
// returned error says what is missing.
//
// Guard conditions per step:
//   - Location: zip entered, zone resolved and serviceable, address present
//   - Services: positive weight (wash & fold) or at least one item (specialty)
//   - Schedule: pickup date and time slot selected
func (w *Wizard) Advance() error {
	if err := w.validateStep(w.step); err != nil {
		return err
	}

	next, err := w.step.Next()
	if err != nil {
		return err
	}

	w.step = next
	return nil
}

// Retreat moves one step backward. All previously entered draft fields are
// preserved; stepping back never loses data.
func (w *Wizard) Retreat() error {
	prev, err := w.step.Prev()
	if err != nil {
		return err
	}

	w.step = prev
	return nil
}

// JumpTo moves directly to an earlier step for the review screen's "Edit"
// affordance. Only invocable from Review, and only toward earlier steps;
// returning to Review is via normal forward advancement.
func (w *Wizard) JumpTo(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}
	if w.step != StepReview || !step.IsBefore(StepReview) {
		return ErrEditOnlyFromReview
	}

	w.step = step
	return nil
}

// Quote recomputes the price breakdown for the draft's current selection and
// zone. Idempotent: it derives everything from the draft and mutates nothing,
// so it can back a live total on every input change.
func (w *Wizard) Quote() (services.PriceBreakdown, error) {
	return w.engine.Price(w.selection(), w.draft.Zone())
}

// OrderRequest finalizes the session into the structured record handed to the
// checkout collaborator. Only available at the review step, with a draft that
// passed every guard on the way there.
func (w *Wizard) OrderRequest() (OrderRequest, error) {
	if w.step != StepReview {
		return OrderRequest{}, errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("order request requires the review step, current step is %s", w.step))
	}

	breakdown, err := w.Quote()
	if err != nil {
		return OrderRequest{}, err
	}

	entry, err := w.catalog.Get(w.draft.SelectedServiceID())
	serviceName := w.draft.SelectedServiceID()
	if err == nil {
		serviceName = entry.DisplayName()
	}

	zip, _ := w.draft.ZipCode()
	return OrderRequest{
		ServiceID:           w.draft.SelectedServiceID(),
		ServiceName:         serviceName,
		EstimatedWeightLbs:  w.draft.EstimatedWeightLbs(),
		ItemQuantities:      w.draft.ItemQuantities(),
		PickupDate:          w.draft.PickupDate(),
		PickupTimeSlot:      w.draft.PickupTimeSlot(),
		Address:             w.draft.Address(),
		ZipCode:             zip,
		Zone:                w.draft.Zone(),
		SpecialInstructions: w.draft.SpecialInstructions(),
		Breakdown:           breakdown,
	}, nil
}

func (w *Wizard) validateStep(step Step) error {
	switch step {
	case StepLocation:
		return w.validateLocation()
	case StepServices:
		return w.validateServices()
	case StepSchedule:
		return w.validateSchedule()
	default:
		// Review is terminal; Step.Next rejects it with a proper error.
		return nil
	}
}

func (w *Wizard) validateLocation() error {
	if _, ok := w.draft.ZipCode(); !ok {
		return errs.NewValueIsRequiredError("zipCode")
	}
	if w.draft.Address() == "" {
		return errs.NewValueIsRequiredError("address")
	}

	zone := w.draft.Zone()
	if !zone.IsResolved() {
		return errs.NewValueIsRequiredError("zone classification")
	}
	if !zone.IsServiceable() {
		return ErrOutsideServiceArea
	}
	return nil
}

func (w *Wizard) validateServices() error {
	switch w.draft.SelectedServiceID() {
	case catalog.ServiceWashFold:
		if w.draft.EstimatedWeightLbs() <= 0 {
			return ErrWeightRequired
		}
	case catalog.ServiceSpecialty:
		if len(w.draft.ItemQuantities()) == 0 {
			return ErrItemsRequired
		}
	}
	// Student special needs no quantity input.
	return nil
}

func (w *Wizard) validateSchedule() error {
	if w.draft.PickupDate().IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if err := w.draft.PickupTimeSlot().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupTimeSlot", err)
	}
	return nil
}

func (w *Wizard) selection() services.Selection {
	return services.Selection{
		ServiceID:      w.draft.SelectedServiceID(),
		WeightLbs:      w.draft.EstimatedWeightLbs(),
		ItemQuantities: w.draft.ItemQuantities(),
	}
}
