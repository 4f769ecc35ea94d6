package stain

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the review state of a stain-treatment request.
//
// State transitions:
//
//	Submitted ──> Reviewed ──┬──> Treated
//	                         └──> Declined
//
// Treated and Declined are final states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Submitted is the initial status when a customer files the request.
	Submitted

	// Reviewed indicates staff have inspected the garment and are deciding
	// whether treatment is feasible.
	Reviewed

	// Treated indicates the stain was treated. Final state.
	Treated

	// Declined indicates treatment was declined. Final state.
	Declined
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Submitted:     "Submitted",
		Reviewed:      "Reviewed",
		Treated:       "Treated",
		Declined:      "Declined",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Submitted || s > Declined {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is a terminal state.
func (s Status) IsFinal() bool {
	return s == Treated || s == Declined
}

// Review transitions the status to Reviewed.
//
// Valid transitions:
//   - Submitted -> Reviewed
func (s Status) Review() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to review", s.String()),
		)
	}

	return Reviewed, nil
}

// Treat transitions the status to Treated.
//
// Valid transitions:
//   - Reviewed -> Treated
func (s Status) Treat() (Status, error) {
	if s != Reviewed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to treat", s.String()),
		)
	}

	return Treated, nil
}

// Decline transitions the status to Declined.
//
// Valid transitions:
//   - Reviewed -> Declined
func (s Status) Decline() (Status, error) {
	if s != Reviewed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to decline", s.String()),
		)
	}

	return Declined, nil
}
