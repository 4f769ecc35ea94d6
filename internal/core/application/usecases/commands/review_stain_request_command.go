package commands

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrReviewStainRequestCommandIsNotConstructed = errors.New(
		"ReviewStainRequestCommand must be created via NewReviewStainRequestCommand constructor",
	)
)

// Resolution names a staff decision on a stain-treatment request.
type Resolution int

const (
	ResolutionUnknown Resolution = iota

	// ResolutionReview marks the request as inspected, without deciding yet.
	ResolutionReview

	// ResolutionTreat resolves the request as treated.
	ResolutionTreat

	// ResolutionDecline resolves the request as declined.
	ResolutionDecline
)

// ResolutionFromString parses a staff action name, case-insensitively.
// Accepted values: "review", "treat", "decline".
func ResolutionFromString(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "review":
		return ResolutionReview, nil
	case "treat":
		return ResolutionTreat, nil
	case "decline":
		return ResolutionDecline, nil
	default:
		return ResolutionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"resolution", fmt.Errorf("%q is not a valid stain-request resolution", s))
	}
}

// Validate checks if the Resolution value is valid.
func (r Resolution) Validate() error {
	if r < ResolutionReview || r > ResolutionDecline {
		return errs.NewValueIsInvalidErrorWithCause(
			"resolution", fmt.Errorf("%d is not a valid stain-request resolution", r))
	}
	return nil
}

// String returns the staff action name for the resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionReview:
		return "review"
	case ResolutionTreat:
		return "treat"
	case ResolutionDecline:
		return "decline"
	default:
		return "unknown"
	}
}

// ReviewStainRequestCommand represents a staff decision on a stain-treatment
// request: mark it reviewed, or resolve it as treated or declined with a note.
type ReviewStainRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	resolution Resolution
	note       string

	guard guard.ConstructorGuard
}

// NewReviewStainRequestCommand creates a command to record a staff decision.
// The note accompanies treat/decline resolutions; whether a note is required
// is enforced by the aggregate (declines always need one).
func NewReviewStainRequestCommand(
	requestID kernel.UUID,
	resolution Resolution,
	note string,
) (ReviewStainRequestCommand, error) {
	reviewCommand := ReviewStainRequestCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setRequestID(requestID),
		reviewCommand.setResolution(resolution),
	); err != nil {
		return ReviewStainRequestCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewStainRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewStainRequestCommandIsNotConstructed)
}

// RequestID returns the target request's unique identifier.
func (c ReviewStainRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Resolution returns the staff decision to apply.
func (c ReviewStainRequestCommand) Resolution() Resolution {
	return c.resolution
}

// Note returns the staff note accompanying the decision.
func (c ReviewStainRequestCommand) Note() string {
	return c.note
}

func (c *ReviewStainRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ReviewStainRequestCommand) setResolution(resolution Resolution) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	c.resolution = resolution
	return nil
}
