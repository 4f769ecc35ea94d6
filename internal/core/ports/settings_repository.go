package ports

import (
	"context"
)

// SettingsRepository defines the persistence contract for the key/value
// business settings store backing pricing rates and service-area zip lists.
type SettingsRepository interface {
	// GetAll returns every stored setting as raw key/value pairs.
	// Missing keys are filled with defaults by the settings parser, so an
	// empty map is a valid result.
	GetAll(ctx context.Context) (map[string]string, error)

	// Upsert stores one setting, inserting or overwriting by key.
	Upsert(ctx context.Context, key, value string) error
}
