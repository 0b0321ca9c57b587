package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/models"
)

// TaskRepository defines the interface for task and assignment data access
type TaskRepository interface {
	// Create creates a task and one assignment per user ID in a single transaction
	Create(ctx context.Context, task *models.Task, assigneeIDs []uint64) error

	// FindByID finds a task by ID, applying optional scopes such as preloads
	FindByID(ctx context.Context, id uint64, scopes ...Scope) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)

	// Update saves a task's fields. A non-nil assigneeIDs (even empty)
	// replaces the task's whole assignment set in the same transaction.
	Update(ctx context.Context, task *models.Task, assigneeIDs []uint64) error

	// Delete deletes a task and its assignments.
	// Returns gorm.ErrRecordNotFound when no task has the ID.
	Delete(ctx context.Context, id uint64) error

	// AssignUsers creates missing assignments and returns the rows for every
	// user, existing or new, in the order of userIDs
	AssignUsers(ctx context.Context, taskID uint64, userIDs []uint64) ([]models.TaskAssignment, error)

	// UnassignUsers removes assignments and returns how many rows were deleted
	UnassignUsers(ctx context.Context, taskID uint64, userIDs []uint64) (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	AssignedUserID *uint64
	WithAssignees  bool
	Page           int
	PageSize       int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List retrieves users ordered by ID with pagination
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)

	// ExistingIDs returns the subset of ids that belong to existing users
	ExistingIDs(ctx context.Context, ids []uint64) ([]uint64, error)
}
