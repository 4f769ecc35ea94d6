// Package services contains stateless domain services for the laundry booking
// core: zone classification of delivery zip codes and order price calculation.
//
// Both services are deterministic pure functions of their inputs. They carry
// the configuration snapshot they were built with and never perform I/O, so
// a quote can be recomputed on every keystroke of the booking wizard without
// side effects.
package services
