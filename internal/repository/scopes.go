package repository

import (
	"github.com/yukikurage/task-tracker/internal/database"
	"gorm.io/gorm"
)

// Scope modifies a query before it runs
type Scope = func(db *gorm.DB) *gorm.DB

// WithAssignments preloads a task's assignment rows
func WithAssignments() Scope {
	return database.PreloadAssignments(false)
}

// WithAssignees preloads a task's assignment rows and the assigned users
func WithAssignees() Scope {
	return database.PreloadAssignments(true)
}
