package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
)

// ZoneClassifier maps a validated zip code to its delivery zone and the
// associated surcharge amount, using the configured service-area lists.
//
// Classification is by exact list membership only:
//   - zip in the standard list -> ZoneStandard, no surcharge
//   - zip in the extended list -> ZoneExtended, flat configured surcharge
//   - otherwise               -> ZoneOutside, no surcharge
//
// The standard list is checked first, so a zip present in both lists
// classifies as standard (the cheaper tier wins). Format validation is not
// this service's job: a ZipCode is well-formed by construction, and malformed
// input fails earlier with an invalid-zip error.
//
// Example:
//
//	classifier := services.NewZoneClassifier(settings.Default())
//	zone, surcharge, err := classifier.Classify(zip)
//	if err != nil {
//	    return err
//	}
//	if !zone.IsServiceable() {
//	    // reject the booking at the location step
//	}
type ZoneClassifier struct {
	settings settings.Settings
}

// NewZoneClassifier creates a classifier bound to a settings snapshot.
func NewZoneClassifier(s settings.Settings) ZoneClassifier {
	return ZoneClassifier{settings: s}
}

// Classify returns the zone for the given zip code and the surcharge that
// zone carries. Deterministic and side-effect free; the only error case is
// an improperly constructed zip code, which is a programming defect.
func (c ZoneClassifier) Classify(zip kernel.ZipCode) (kernel.Zone, kernel.Money, error) {
	if err := zip.Validate(); err != nil {
		return kernel.ZoneUnknown, kernel.ZeroMoney(), err
	}

	if c.settings.InStandardZips(zip) {
		return kernel.ZoneStandard, kernel.ZeroMoney(), nil
	}

	if c.settings.InExtendedZips(zip) {
		return kernel.ZoneExtended, c.settings.DeliverySurcharge(), nil
	}

	return kernel.ZoneOutside, kernel.ZeroMoney(), nil
}
