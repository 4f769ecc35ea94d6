// Package settingsrepo persists the key/value business settings that back
// pricing rates and service-area zip lists.
package settingsrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingDTO represents one row of the key/value settings table.
type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName specifies the database table name for settings.
func (SettingDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
// Settings are plain strings; parsing and defaulting live in the
// settings domain package.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetAll returns every stored setting as raw key/value pairs.
func (r *GormSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var dtos []SettingDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(dtos))
	for _, dto := range dtos {
		values[dto.Key] = dto.Value
	}

	return values, nil
}

// Upsert stores one setting, inserting or overwriting by key.
func (r *GormSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	dto := SettingDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
