package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Entry categories used by the default catalog.
const (
	CategoryService   = "service"
	CategorySpecialty = "specialty"
)

// ErrCatalogIsEmpty is returned when constructing a catalog with no entries.
var ErrCatalogIsEmpty = errors.New("catalog must contain at least one entry")

// Catalog is an immutable, id-indexed collection of catalog entries.
// It is reference data for the pricing engine: lookups are defensive
// (unknown ids return ObjectNotFoundError) and nothing is ever mutated
// after construction.
type Catalog struct {
	entries map[string]Entry
	ids     []string
}

// NewCatalog creates a catalog from a list of entries.
// Every entry must be valid and ids must be unique.
func NewCatalog(entries []Entry) (Catalog, error) {
	if len(entries) == 0 {
		return Catalog{}, ErrCatalogIsEmpty
	}

	indexed := make(map[string]Entry, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, exists := indexed[entry.ID()]; exists {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
				"entries", fmt.Errorf("duplicate entry id %q", entry.ID()))
		}
		indexed[entry.ID()] = entry
		ids = append(ids, entry.ID())
	}

	return Catalog{entries: indexed, ids: ids}, nil
}

// Get retrieves an entry by id.
// Returns ObjectNotFoundError for unknown ids so callers can refuse
// unrecognized service selections explicitly.
func (c Catalog) Get(id string) (Entry, error) {
	entry, ok := c.entries[id]
	if !ok {
		return Entry{}, errs.NewObjectNotFoundError("catalogEntry", id)
	}
	return entry, nil
}

// Has reports whether the catalog contains an entry with the given id.
func (c Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// SpecialtyItems returns the per-item specialty entries in insertion order.
// These are the items a customer can add quantities of on the services step.
func (c Catalog) SpecialtyItems() []Entry {
	items := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		if entry := c.entries[id]; entry.Category() == CategorySpecialty {
			items = append(items, entry)
		}
	}
	return items
}

// All returns every entry in insertion order.
func (c Catalog) All() []Entry {
	entries := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		entries = append(entries, c.entries[id])
	}
	return entries
}

// DefaultCatalog returns the built-in catalog used until externally managed
// catalog data has loaded. The booking flow must always have a usable catalog,
// so this default is a documented fallback, not a placeholder.
func DefaultCatalog() Catalog {
	mustMoney := func(s string) kernel.Money {
		m, err := kernel.NewMoneyFromString(s)
		if err != nil {
			panic(err) // static literals below, cannot fail
		}
		return m
	}

	mustEntry := func(id, name string, price kernel.Money, unit Unit, category string) Entry {
		entry, err := NewEntry(id, name, price, unit, category)
		if err != nil {
			panic(err)
		}
		return entry
	}

	entries := []Entry{
		mustEntry(ServiceStudentSpecial, "Student Special", mustMoney("25.00"), UnitFlat, CategoryService),
		mustEntry(ServiceWashFold, "Wash & Fold", mustMoney("2.00"), UnitPerPound, CategoryService),
		mustEntry("comforter", "Comforter (Queen/King)", mustMoney("20.00"), UnitPerItem, CategorySpecialty),
		mustEntry("comforter-twin", "Comforter (Twin/Full)", mustMoney("15.00"), UnitPerItem, CategorySpecialty),
		mustEntry("dry-clean", "Dry Cleaning Item", mustMoney("8.00"), UnitPerItem, CategorySpecialty),
	}

	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}
