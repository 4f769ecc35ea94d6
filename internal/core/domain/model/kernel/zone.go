package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Zone represents the delivery zone classification of a zip code.
// It is derived data: the zone classifier recomputes it from the configured
// service-area lists whenever the zip changes, and it is never persisted
// as part of a booking draft's independent state.
//
// Classification rules:
//   - ZoneStandard: zip is in the configured standard service-area list
//   - ZoneExtended: zip is in the configured extended list (flat surcharge applies)
//   - ZoneOutside:  zip is in neither list (booking cannot proceed)
//   - ZoneUnknown:  not yet classified (zip missing or just edited)
type Zone int

const (
	// ZoneUnknown means the zip has not been classified yet.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneStandard is the regular service area with no surcharge.
	ZoneStandard

	// ZoneExtended is the extended service area; a flat delivery
	// surcharge is added exactly once per order.
	ZoneExtended

	// ZoneOutside means the address is not serviceable.
	ZoneOutside
)

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown:  "Unknown",
		ZoneStandard: "Standard",
		ZoneExtended: "Extended",
		ZoneOutside:  "Outside",
	}
}

// Validate checks if the Zone value is one of the defined classifications.
// ZoneUnknown is valid here: it is the legitimate "not yet classified" state.
func (z Zone) Validate() error {
	if _, ok := getZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"zone is invalid", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// IsResolved reports whether classification has happened at all.
// The booking wizard may not advance past the location step until
// the zone is resolved.
func (z Zone) IsResolved() bool {
	return z == ZoneStandard || z == ZoneExtended || z == ZoneOutside
}

// IsServiceable reports whether an order can be delivered to this zone.
func (z Zone) IsServiceable() bool {
	return z == ZoneStandard || z == ZoneExtended
}

// String returns the human-readable name of the zone.
// This method implements the fmt.Stringer interface and is safe
// to call on any Zone value, including invalid ones.
func (z Zone) String() string {
	if s, ok := getZoneStrings()[z]; ok {
		return s
	}
	return "Unknown"
}
