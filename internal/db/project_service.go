package db

import (
	"gorm.io/gorm"

	"github.com/temirbekov/flowdeck/internal/models"
)

// LoadProjects retrieves every project with its columns and tasks, in
// board order, ready to seed the in-memory project store.
func LoadProjects() ([]models.Project, error) {
	var projects []models.Project
	err := DB.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SaveProjects writes the full project state back. The in-memory store is
// the source of truth, so the previous rows are replaced wholesale in one
// transaction; partial board states are never observable on disk.
func SaveProjects(projects []models.Project) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{&models.Task{}, &models.Column{}, &models.Project{}} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		if len(projects) == 0 {
			return nil
		}
		return tx.Create(&projects).Error
	})
}
