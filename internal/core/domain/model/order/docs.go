// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that captures an accepted booking and its price
//   - Status: A state machine that enforces valid fulfillment transitions
//
// Key business rules:
//   - Orders must have a valid identifier and a serviceable delivery address
//   - Pricing is locked in at submission and never recomputed
//   - Fulfillment follows Received -> Processing -> Ready -> Delivered
//   - Orders can be cancelled only while Received or Processing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
