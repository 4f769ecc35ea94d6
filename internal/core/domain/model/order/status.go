package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the fulfillment state of a laundry order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct operational workflow.
//
// State transitions:
//
//	Received ──> Processing ──> Ready ──> Delivered
//	    │             │
//	    └──> Cancelled <──┘
//
// Delivered and Cancelled are final states. Cancellation is only
// possible before the order is ready for delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when a booking is accepted.
	// The order is waiting for pickup and intake.
	Received

	// Processing indicates the laundry has been picked up and is being
	// washed, dried, and folded.
	Processing

	// Ready indicates the order is done and queued for delivery.
	Ready

	// Delivered indicates the order has been returned to the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before it was ready.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Received:   "Received",
		Processing: "Processing",
		Ready:      "Ready",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:   "Received",
		Processing: "Processing",
		Ready:      "Ready",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Processing, Ready, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is a terminal state.
// Delivered and Cancelled orders accept no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Received -> Processing (laundry picked up)
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartProcessing() (Status, error) {
	if s != Received {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return Processing, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Processing -> Ready (wash and fold finished)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkReady() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}

	return Ready, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered (order returned to the customer)
//
// Delivered is a final state with no further transitions possible.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Received -> Cancelled (cancelled before pickup)
//   - Processing -> Cancelled (cancelled during processing)
//
// Orders that are Ready or Delivered can no longer be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Received && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
