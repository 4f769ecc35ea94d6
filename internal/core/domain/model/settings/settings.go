// Package settings provides the externally configured parameters of the
// booking flow: pricing rates and the delivery service-area zip lists.
//
// Settings values arrive as free-form strings (environment, admin table,
// hosted backend) and require parse/trim before use. Parsing NEVER fails:
// any missing or malformed field falls back to its documented default, so
// the booking core always has a usable configuration even before an external
// fetch completes.
package settings

import (
	"strings"

	"laundry/internal/core/domain/model/kernel"
)

// Keys of the raw settings map. The flat dotted names mirror the managed
// settings table this data is sourced from.
const (
	KeyWashFoldPerLb         = "pricing.washFoldPerLb"
	KeyWashFoldMinimum       = "pricing.washFoldMinimum"
	KeyDeliverySurcharge     = "pricing.deliverySurcharge"
	KeyFreeDeliveryThreshold = "pricing.freeDeliveryThreshold"
	KeyStandardZips          = "delivery.standardZips"
	KeyExtendedZips          = "delivery.extendedZips"
)

// Defaults applied per field when a raw value is missing or unparseable.
const (
	DefaultWashFoldPerLb         = "2.00"
	DefaultWashFoldMinimum       = "30.00"
	DefaultDeliverySurcharge     = "5.00"
	DefaultFreeDeliveryThreshold = "35.00"
	DefaultStandardZips          = "43606,43607,43610,43614,43615"
	DefaultExtendedZips          = "43551,43537,43560"
)

// Settings holds the parsed, typed configuration of the pricing engine and
// zone classifier. Immutable once built; a new snapshot replaces the old one
// when configuration is refreshed.
type Settings struct {
	washFoldPerLb         kernel.Money
	washFoldMinimum       kernel.Money
	deliverySurcharge     kernel.Money
	freeDeliveryThreshold kernel.Money
	standardZips          map[string]struct{}
	extendedZips          map[string]struct{}
}

// Default returns the built-in settings used until external configuration
// has loaded.
func Default() Settings {
	return Parse(nil)
}

// Parse builds Settings from a raw key/value map. Field by field, a value that
// is absent, blank, or unparseable silently falls back to its default: a
// half-loaded configuration must degrade to usable pricing, not to an error.
func Parse(raw map[string]string) Settings {
	return Settings{
		washFoldPerLb:         parseMoney(raw, KeyWashFoldPerLb, DefaultWashFoldPerLb),
		washFoldMinimum:       parseMoney(raw, KeyWashFoldMinimum, DefaultWashFoldMinimum),
		deliverySurcharge:     parseMoney(raw, KeyDeliverySurcharge, DefaultDeliverySurcharge),
		freeDeliveryThreshold: parseMoney(raw, KeyFreeDeliveryThreshold, DefaultFreeDeliveryThreshold),
		standardZips:          parseZipList(raw, KeyStandardZips, DefaultStandardZips),
		extendedZips:          parseZipList(raw, KeyExtendedZips, DefaultExtendedZips),
	}
}

// WashFoldPerLb returns the wash & fold rate per pound.
func (s Settings) WashFoldPerLb() kernel.Money {
	return s.washFoldPerLb
}

// WashFoldMinimum returns the single configured minimum order amount for
// wash & fold. There is exactly one minimum; competing literals elsewhere
// in the product are superseded by this value.
func (s Settings) WashFoldMinimum() kernel.Money {
	return s.washFoldMinimum
}

// DeliverySurcharge returns the flat surcharge applied once per order for
// extended-zone delivery.
func (s Settings) DeliverySurcharge() kernel.Money {
	return s.deliverySurcharge
}

// FreeDeliveryThreshold returns the order total above which delivery is free.
// Present in configuration but not consulted by current pricing rules.
func (s Settings) FreeDeliveryThreshold() kernel.Money {
	return s.freeDeliveryThreshold
}

// InStandardZips reports whether the zip is an exact member of the standard
// service-area list.
func (s Settings) InStandardZips(zip kernel.ZipCode) bool {
	_, ok := s.standardZips[zip.String()]
	return ok
}

// InExtendedZips reports whether the zip is an exact member of the extended
// service-area list.
func (s Settings) InExtendedZips(zip kernel.ZipCode) bool {
	_, ok := s.extendedZips[zip.String()]
	return ok
}

func parseMoney(raw map[string]string, key string, fallback string) kernel.Money {
	if value, ok := raw[key]; ok {
		if m, err := kernel.NewMoneyFromString(strings.TrimSpace(value)); err == nil {
			return m
		}
	}

	m, err := kernel.NewMoneyFromString(fallback)
	if err != nil {
		panic(err) // defaults are static literals, cannot fail
	}
	return m
}

func parseZipList(raw map[string]string, key string, fallback string) map[string]struct{} {
	value, ok := raw[key]
	if !ok || strings.TrimSpace(value) == "" {
		value = fallback
	}

	zips := make(map[string]struct{})
	for _, part := range strings.Split(value, ",") {
		zip, err := kernel.NewZipCode(part)
		if err != nil {
			// Malformed list entries are dropped, not fatal.
			continue
		}
		zips[zip.String()] = struct{}{}
	}
	return zips
}
