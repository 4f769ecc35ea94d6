package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler retrieves the stored business settings.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings queries.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the query and returns all settings as key/value pairs.
// An empty map is a valid result for a fresh database.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (map[string]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT key, value FROM settings ORDER BY key
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
