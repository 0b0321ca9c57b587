package database

import (
	"fmt"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// Models lists every persisted model in migration order
var Models = []interface{}{
	&models.User{},
	&models.Task{},
	&models.TaskAssignment{},
}

// Migrate creates or updates the schema and secondary indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}

// AddIndexes adds the lookup indexes that are not declared on the models
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task listing filters
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_task_type", "task_type"},
		{"tasks", "idx_tasks_created_at", "created_at"},

		// Per-user task lookups
		{"task_assignments", "idx_task_assignments_user_id", "user_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
