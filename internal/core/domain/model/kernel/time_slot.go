package kernel

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// TimeSlot represents the pickup window a customer selects while scheduling.
type TimeSlot int

const (
	// TimeSlotUnknown represents an unselected time slot.
	// This value (0) helps catch uninitialized TimeSlot values.
	TimeSlotUnknown TimeSlot = iota

	// TimeSlotMorning is the morning pickup window.
	TimeSlotMorning

	// TimeSlotAfternoon is the afternoon pickup window.
	TimeSlotAfternoon

	// TimeSlotEvening is the evening pickup window.
	TimeSlotEvening
)

func getTimeSlotStrings() map[TimeSlot]string {
	return map[TimeSlot]string{
		TimeSlotUnknown:   "Unknown",
		TimeSlotMorning:   "Morning",
		TimeSlotAfternoon: "Afternoon",
		TimeSlotEvening:   "Evening",
	}
}

func getValidTimeSlotStrings() map[TimeSlot]string {
	//nolint:exhaustive // TimeSlotUnknown is intentionally excluded as it's invalid
	return map[TimeSlot]string{
		TimeSlotMorning:   "Morning",
		TimeSlotAfternoon: "Afternoon",
		TimeSlotEvening:   "Evening",
	}
}

// TimeSlotFromString parses a time slot from its case-insensitive name.
// Used when binding slot values from HTTP requests or persistence.
func TimeSlotFromString(s string) (TimeSlot, error) {
	for slot, name := range getValidTimeSlotStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return slot, nil
		}
	}
	return TimeSlotUnknown, errs.NewValueIsInvalidErrorWithCause(
		"timeSlot", fmt.Errorf("%q is not a valid time slot", s))
}

// Validate checks if the TimeSlot is one of the selectable windows.
// TimeSlotUnknown is invalid: scheduling requires an explicit selection.
func (t TimeSlot) Validate() error {
	if _, ok := getValidTimeSlotStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeSlot is invalid", fmt.Errorf("%d is not a valid time slot", t))
	}
	return nil
}

// String returns the human-readable name of the time slot.
func (t TimeSlot) String() string {
	if s, ok := getTimeSlotStrings()[t]; ok {
		return s
	}
	return "Unknown"
}
