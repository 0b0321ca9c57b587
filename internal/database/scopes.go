package database

import (
	"gorm.io/gorm"
)

// Paginate applies page/page size to a GORM query. Non-positive values disable paging.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page <= 0 || pageSize <= 0 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// PreloadAssignments loads a task's assignments in insertion order, and the
// assigned users when withUsers is set.
func PreloadAssignments(withUsers bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_assignments.id ASC")
		})
		if withUsers {
			db = db.Preload("Assignments.User")
		}
		return db
	}
}
