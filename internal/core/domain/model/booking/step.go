package booking

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Step represents the booking wizard's position in its linear flow.
// It implements a state machine with defined transitions to ensure
// the wizard follows the correct collection order.
//
// State transitions:
//
//	Location ──> Services ──> Schedule ──> Review
//	    ^            ^            ^          │
//	    └────────────┴────────────┴──────────┘
//	           (edit jumps from Review)
//
// Forward movement is strictly one step at a time via Next. Backward
// movement is one step via Prev, or a direct jump from Review to any
// earlier step for the review screen's "Edit" affordance. Review is the
// terminal step: submission is an external action, not a transition.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// StepLocation collects the delivery zip code and address.
	StepLocation

	// StepServices collects the service selection and its quantity inputs.
	StepServices

	// StepSchedule collects the pickup date and time slot.
	StepSchedule

	// StepReview is the terminal step where the order is reviewed
	// and handed to checkout.
	StepReview
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:  "Unknown",
		StepLocation: "Location",
		StepServices: "Services",
		StepSchedule: "Schedule",
		StepReview:   "Review",
	}
}

func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[Step]string{
		StepLocation: "Location",
		StepServices: "Services",
		StepSchedule: "Schedule",
		StepReview:   "Review",
	}
}

// Validate checks if the Step value is one of the wizard's defined steps.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step.
// Safe to call on any Step value, including invalid ones.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsBefore reports whether s comes strictly earlier in the flow than other.
func (s Step) IsBefore(other Step) bool {
	return s < other
}

// Next transitions one step forward.
//
// Returns an error from Review (the terminal step) or from an invalid step.
// Guard conditions on the data being collected are the wizard's concern,
// not the step machine's.
func (s Step) Next() (Step, error) {
	if err := s.Validate(); err != nil {
		return StepUnknown, err
	}
	if s == StepReview {
		return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
			"step is invalid", fmt.Errorf("%s is the terminal step", s))
	}

	return s + 1, nil
}

// Prev transitions one step backward.
//
// Returns an error from Location (the initial step) or from an invalid step.
func (s Step) Prev() (Step, error) {
	if err := s.Validate(); err != nil {
		return StepUnknown, err
	}
	if s == StepLocation {
		return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
			"step is invalid", fmt.Errorf("%s is the initial step", s))
	}

	return s - 1, nil
}
