package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rohansood98/ggs-accounting/internal/models"
)

// SetSetting stores or replaces a key/value pair.
func (s *Store) SetSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// GetSetting returns the stored value, or an empty string when the key has
// never been set. A missing key is not an error.
func (s *Store) GetSetting(key string) (string, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return setting.Value, nil
}

// SaveQuery stores a named SQL snippet for the report console.
func (s *Store) SaveQuery(name, sql string) (uint, error) {
	q := models.SavedQuery{Name: name, SQL: sql}
	if err := s.db.Create(&q).Error; err != nil {
		return 0, fmt.Errorf("save query: %w", err)
	}
	return q.ID, nil
}

func (s *Store) GetSavedQueries() ([]models.SavedQuery, error) {
	var queries []models.SavedQuery
	if err := s.db.Order("id").Find(&queries).Error; err != nil {
		return nil, fmt.Errorf("fetch saved queries: %w", err)
	}
	return queries, nil
}
