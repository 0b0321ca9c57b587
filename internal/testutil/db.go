// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database with foreign keys enforced.
// The pool is pinned to one connection so every query sees the same database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// CreateUser inserts a user named after username
func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Name:         "Test " + username,
		Email:        fmt.Sprintf("%s@example.com", username),
		Mobile:       "1234567890",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTask inserts a pending feature task
func CreateTask(t testing.TB, db *gorm.DB, name string) *models.Task {
	t.Helper()

	task := &models.Task{
		Name:        name,
		Description: "This is a test task",
		TaskType:    models.TaskTypeFeature,
		Status:      models.TaskStatusPending,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

// Assign inserts an assignment row directly
func Assign(t testing.TB, db *gorm.DB, taskID, userID uint64) *models.TaskAssignment {
	t.Helper()

	assignment := &models.TaskAssignment{TaskID: taskID, UserID: userID}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}

// CountAssignments returns the number of assignment rows for a task
func CountAssignments(t testing.TB, db *gorm.DB, taskID uint64) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.TaskAssignment{}).Where("task_id = ?", taskID).Count(&count).Error)
	return count
}
