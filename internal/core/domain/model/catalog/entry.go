package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Identifiers of the bookable top-level services. These are the only values
// a booking draft may carry as its selected service.
const (
	ServiceStudentSpecial = "student-special"
	ServiceWashFold       = "wash-fold"
	ServiceSpecialty      = "specialty"
)

// ErrEntryIsNotConstructed is returned when attempting to use an improperly
// initialized Entry. Entries must be created via the NewEntry constructor.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Unit describes how a catalog entry is priced.
type Unit int

const (
	// UnitUnknown represents an undefined pricing unit.
	// This value (0) helps catch uninitialized Unit values.
	UnitUnknown Unit = iota

	// UnitPerPound prices the entry by estimated weight in pounds.
	UnitPerPound

	// UnitPerItem prices the entry by item count.
	UnitPerItem

	// UnitFlat prices the entry at a fixed amount regardless of weight or count.
	UnitFlat
)

func getUnitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown:  "Unknown",
		UnitPerPound: "PerPound",
		UnitPerItem:  "PerItem",
		UnitFlat:     "Flat",
	}
}

// Validate checks if the Unit is one of the defined pricing units.
func (u Unit) Validate() error {
	if u == UnitUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit is invalid", fmt.Errorf("%d is not a valid pricing unit", u))
	}
	if _, ok := getUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit is invalid", fmt.Errorf("%d is not a valid pricing unit", u))
	}
	return nil
}

// String returns the human-readable name of the pricing unit.
func (u Unit) String() string {
	if s, ok := getUnitStrings()[u]; ok {
		return s
	}
	return "Unknown"
}

// Entry represents a single priced, named service or item offered for booking.
// Entry is an immutable value object: once constructed it never changes, and
// the pricing engine only ever reads it.
//
// Key business rules:
//   - Must be constructed through NewEntry
//   - id and display name must not be empty
//   - unit price must be a constructed Money value
//   - pricing unit must be defined
type Entry struct { //nolint:recvcheck //using for validation
	id          string
	displayName string
	unitPrice   kernel.Money
	unit        Unit
	category    string

	guard guard.ConstructorGuard
}

// NewEntry creates a catalog entry with validation.
//
// Parameters:
//   - id: stable identifier used by booking drafts and item quantity maps
//   - displayName: customer-facing name
//   - unitPrice: price per unit (per pound, per item, or the flat amount)
//   - unit: how the price applies
//   - category: free-form grouping, e.g. "service" or "specialty"
func NewEntry(id string, displayName string, unitPrice kernel.Money, unit Unit, category string) (Entry, error) {
	entry := Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setDisplayName(displayName),
		entry.setUnitPrice(unitPrice),
		entry.setUnit(unit),
		entry.setCategory(category),
	); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Validate ensures the Entry was created through the constructor.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's stable identifier.
func (e Entry) ID() string {
	return e.id
}

// DisplayName returns the customer-facing name of the entry.
func (e Entry) DisplayName() string {
	return e.displayName
}

// UnitPrice returns the price per pricing unit.
func (e Entry) UnitPrice() kernel.Money {
	return e.unitPrice
}

// Unit returns how the entry is priced.
func (e Entry) Unit() Unit {
	return e.unit
}

// Category returns the entry's grouping category.
func (e Entry) Category() string {
	return e.category
}

func (e *Entry) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	e.id = id
	return nil
}

func (e *Entry) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	e.displayName = displayName
	return nil
}

func (e *Entry) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	e.unitPrice = unitPrice
	return nil
}

func (e *Entry) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	e.unit = unit
	return nil
}

func (e *Entry) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	e.category = category
	return nil
}
