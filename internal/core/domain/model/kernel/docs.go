// Package kernel provides core domain primitives for the laundry service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A currency-precision decimal value object for all pricing arithmetic
//   - ZipCode: A validated 5-digit delivery zip code
//   - Zone: The delivery zone classification (standard, extended, outside)
//   - TimeSlot: The pickup time slot (morning, afternoon, evening)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
