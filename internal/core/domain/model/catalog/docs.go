// Package catalog provides the priced service catalog for the laundry domain.
// It holds immutable reference data: the bookable services (student special,
// wash & fold) and the individually priced specialty items (comforters,
// dry cleaning and so on).
//
// The package includes:
//   - Entry: a single priced, named service or item
//   - Unit: how an entry is priced (per pound, per item, or flat)
//   - Catalog: an immutable, id-indexed collection of entries with defensive lookup
//
// Catalog data is loaded from external configuration or a managed table;
// the domain never mutates it. Unknown ids are a caller error surfaced via
// ObjectNotFoundError so the pricing engine can refuse them explicitly.
package catalog
