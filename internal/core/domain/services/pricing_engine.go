package services

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
)

var (
	// ErrInvalidServiceSelection is returned when the selected service id is not
	// a recognized catalog entry, or an item quantity references an unknown or
	// non-specialty entry.
	ErrInvalidServiceSelection = errors.New("invalid service selection")

	// ErrInvalidWeight is returned when pricing wash & fold with a non-positive
	// estimated weight. The surrounding UI coercing bad input to zero was a bug;
	// the engine refuses it outright.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrInvalidQuantity is returned when an item quantity is negative.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Selection is the pricing-relevant slice of a booking: which service was
// chosen and the quantity inputs that service reads. WeightLbs is only
// meaningful for wash & fold; ItemQuantities only for specialty. The fields
// are mutually exclusive in effect: pricing reads exactly the one matching
// ServiceID and ignores the other.
type Selection struct {
	ServiceID      string
	WeightLbs      int
	ItemQuantities map[string]int
}

// PriceBreakdown is the derived pricing result: recomputed on demand, never
// stored. Total is always Subtotal + Surcharge.
type PriceBreakdown struct {
	Subtotal  kernel.Money
	Surcharge kernel.Money
	Total     kernel.Money
}

// PricingEngine computes the charge for a service selection in a delivery
// zone. It is a pure function of its inputs plus the catalog and settings
// snapshot it was built with.
//
// Pricing rules by selected service:
//   - student-special: the catalog's flat price, independent of weight/items
//   - wash-fold: max(weight x per-pound rate, configured minimum)
//   - specialty: sum of quantity x catalog unit price over selected items
//
// An extended-zone delivery adds the flat configured surcharge exactly once
// per order - not per item, not per pound. Standard and outside zones add
// nothing.
//
// Example:
//
//	engine := services.NewPricingEngine(catalog.DefaultCatalog(), settings.Default())
//	breakdown, err := engine.Price(services.Selection{
//	    ServiceID: catalog.ServiceWashFold,
//	    WeightLbs: 15,
//	}, kernel.ZoneStandard)
//	// breakdown.Total is "30.00": 15 lbs x 2.00 hits the 30.00 minimum exactly
type PricingEngine struct {
	catalog  catalog.Catalog
	settings settings.Settings
}

// NewPricingEngine creates an engine bound to a catalog and settings snapshot.
func NewPricingEngine(c catalog.Catalog, s settings.Settings) PricingEngine {
	return PricingEngine{catalog: c, settings: s}
}

// Price computes the PriceBreakdown for a selection delivered to the given
// zone. Deterministic and side-effect free. Validation errors here indicate
// inputs the booking wizard should have constrained already; callers treat
// them as defects to log, not user-facing messages.
func (e PricingEngine) Price(sel Selection, zone kernel.Zone) (PriceBreakdown, error) {
	subtotal, err := e.subtotal(sel)
	if err != nil {
		return PriceBreakdown{}, err
	}

	surcharge := kernel.ZeroMoney()
	if zone == kernel.ZoneExtended {
		surcharge = e.settings.DeliverySurcharge()
	}

	return PriceBreakdown{
		Subtotal:  subtotal,
		Surcharge: surcharge,
		Total:     subtotal.Add(surcharge),
	}, nil
}

func (e PricingEngine) subtotal(sel Selection) (kernel.Money, error) {
	switch sel.ServiceID {
	case catalog.ServiceStudentSpecial:
		entry, err := e.catalog.Get(catalog.ServiceStudentSpecial)
		if err != nil {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrInvalidServiceSelection, err)
		}
		return entry.UnitPrice(), nil

	case catalog.ServiceWashFold:
		return e.washFoldSubtotal(sel.WeightLbs)

	case catalog.ServiceSpecialty:
		return e.specialtySubtotal(sel.ItemQuantities)

	default:
		return kernel.Money{}, fmt.Errorf("%w: unknown service %q", ErrInvalidServiceSelection, sel.ServiceID)
	}
}

func (e PricingEngine) washFoldSubtotal(weightLbs int) (kernel.Money, error) {
	if weightLbs <= 0 {
		return kernel.Money{}, fmt.Errorf("%w: %d lbs is not positive", ErrInvalidWeight, weightLbs)
	}

	byWeight := e.settings.WashFoldPerLb().MulInt(weightLbs)
	return byWeight.Max(e.settings.WashFoldMinimum()), nil
}

func (e PricingEngine) specialtySubtotal(itemQuantities map[string]int) (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()

	for itemID, quantity := range itemQuantities {
		if quantity < 0 {
			return kernel.Money{}, fmt.Errorf("%w: %d of %q", ErrInvalidQuantity, quantity, itemID)
		}
		if quantity == 0 {
			continue
		}

		entry, err := e.catalog.Get(itemID)
		if err != nil {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrInvalidServiceSelection, err)
		}
		if entry.Category() != catalog.CategorySpecialty {
			return kernel.Money{}, fmt.Errorf("%w: %q is not a specialty item", ErrInvalidServiceSelection, itemID)
		}

		subtotal = subtotal.Add(entry.UnitPrice().MulInt(quantity))
	}

	return subtotal, nil
}
