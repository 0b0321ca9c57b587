package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task together with its initial assignments
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task, assigneeIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}

		_, err := upsertAssignments(tx, task.ID, assigneeIDs)
		return err
	})
}

// FindByID finds a task by ID with optional scopes
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64, scopes ...Scope) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Scopes(scopes...).First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination, ordered by ID
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	db := r.db.WithContext(ctx)
	query := db.Model(&models.Task{})

	if filter.AssignedUserID != nil {
		assignmentSubQuery := db.Model(&models.TaskAssignment{}).
			Select("1").
			Where("task_assignments.task_id = tasks.id").
			Where("task_assignments.user_id = ?", *filter.AssignedUserID)
		query = query.Where("EXISTS (?)", assignmentSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	if err := query.
		Order("tasks.id ASC").
		Scopes(
			database.Paginate(filter.Page, filter.PageSize),
			database.PreloadAssignments(filter.WithAssignees),
		).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update writes all task fields and optionally replaces its assignments.
// It returns gorm.ErrRecordNotFound when the task no longer exists.
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task, assigneeIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&models.Task{}, task.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(task).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(task).Error; err != nil {
			return err
		}

		if assigneeIDs == nil {
			return nil
		}

		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		_, err := upsertAssignments(tx, task.ID, assigneeIDs)
		return err
	})
}

// Delete deletes a task and its assignments in a transaction
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// AssignUsers assigns multiple users to a task, keeping existing rows untouched
func (r *GormTaskRepository) AssignUsers(ctx context.Context, taskID uint64, userIDs []uint64) ([]models.TaskAssignment, error) {
	var assignments []models.TaskAssignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		assignments, err = upsertAssignments(tx, taskID, userIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

// UnassignUsers removes user assignments from a task
func (r *GormTaskRepository) UnassignUsers(ctx context.Context, taskID uint64, userIDs []uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id IN ?", taskID, userIDs).
		Delete(&models.TaskAssignment{})

	return result.RowsAffected, result.Error
}

// upsertAssignments inserts the missing (task, user) rows and reads back
// every requested row. The unique index decides which insert wins when two
// transactions race on the same pair.
func upsertAssignments(tx *gorm.DB, taskID uint64, userIDs []uint64) ([]models.TaskAssignment, error) {
	if len(userIDs) == 0 {
		return []models.TaskAssignment{}, nil
	}

	rows := make([]models.TaskAssignment, len(userIDs))
	for i, userID := range userIDs {
		rows[i] = models.TaskAssignment{
			TaskID: taskID,
			UserID: userID,
		}
	}

	if err := tx.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error; err != nil {
		return nil, err
	}

	var stored []models.TaskAssignment
	if err := tx.Where("task_id = ? AND user_id IN ?", taskID, userIDs).
		Find(&stored).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uint64]models.TaskAssignment, len(stored))
	for _, a := range stored {
		byUser[a.UserID] = a
	}

	assignments := make([]models.TaskAssignment, 0, len(userIDs))
	for _, userID := range userIDs {
		if a, ok := byUser[userID]; ok {
			assignments = append(assignments, a)
		}
	}

	return assignments, nil
}
