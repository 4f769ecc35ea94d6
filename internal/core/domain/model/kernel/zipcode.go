package kernel

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ZipCodeLength is the number of digits in a valid US zip code.
const ZipCodeLength = 5

// ErrZipCodeIsNotConstructed is returned when attempting to use an improperly
// initialized ZipCode. Zip codes must be created via the NewZipCode constructor.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"zip code must be created via NewZipCode constructor")

// ZipCode is an immutable value object representing a validated 5-digit
// delivery zip code. Format validation happens here, once; every consumer
// downstream (the zone classifier in particular) can assume a well-formed zip
// and only has to answer membership questions.
//
// The zero value of ZipCode is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	zip, err := kernel.NewZipCode("43606")
//	if err != nil {
//	    // Surfaced to the user as an invalid-zip message
//	}
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from a raw string. Leading and trailing
// whitespace is trimmed; the remainder must be exactly 5 ASCII digits.
// Returns a ValueIsInvalidError describing the failure otherwise.
func NewZipCode(raw string) (ZipCode, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) != ZipCodeLength {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(
			"zipCode", fmt.Errorf("%q is not %d characters long", trimmed, ZipCodeLength))
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(
				"zipCode", fmt.Errorf("%q contains a non-digit character", trimmed))
		}
	}

	return ZipCode{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the ZipCode was properly constructed using the constructor.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// String returns the 5-digit zip code string.
func (z ZipCode) String() string {
	return z.value
}

// IsEqual compares two zip codes for equality.
// Both zip codes must be properly constructed for the comparison to succeed.
func (z ZipCode) IsEqual(other ZipCode) (bool, error) {
	if err := z.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return z.value == other.value, nil
}
