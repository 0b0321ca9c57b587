package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// TaskPatch lists the task fields present in a request.
// A nil field was not supplied. A non-nil AssignedUsers, even empty,
// replaces the whole assignment set.
type TaskPatch struct {
	Name          *string
	Description   *string
	TaskType      *models.TaskType
	Status        *models.TaskStatus
	AssignedUsers *[]uint64
}

// ListTasks returns a page of tasks ordered by ID, with their assignment rows
func (s *TaskService) ListTasks(ctx context.Context, page, pageSize int) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, repository.TaskFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task with its assignment rows
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	return s.findTask(ctx, taskID, repository.WithAssignments())
}

// CreateTask validates every field, then creates the task and its
// assignments. Nothing is written when validation fails.
func (s *TaskService) CreateTask(ctx context.Context, input TaskPatch) (*models.Task, error) {
	task := &models.Task{
		TaskType: models.TaskTypeFeature,
		Status:   models.TaskStatusPending,
	}

	verr := NewValidationError()
	applyTaskPatch(task, input, true, verr)

	assigneeIDs, err := s.validateAssignees(ctx, input.AssignedUsers, verr)
	if err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if err := s.taskRepo.Create(ctx, task, assigneeIDs); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.findTask(ctx, task.ID, repository.WithAssignments())
}

// UpdateTask applies a patch to an existing task. A full update (partial
// false) requires name; a partial update only touches supplied fields.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, patch TaskPatch, partial bool) (*models.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	verr := NewValidationError()
	applyTaskPatch(task, patch, !partial, verr)

	assigneeIDs, err := s.validateAssignees(ctx, patch.AssignedUsers, verr)
	if err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if err := s.taskRepo.Update(ctx, task, assigneeIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.findTask(ctx, task.ID, repository.WithAssignments())
}

// DeleteTask deletes a task together with its assignments
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) findTask(ctx context.Context, taskID uint64, scopes ...repository.Scope) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, scopes...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// validateAssignees records a field error for every id that is not a user.
// It returns nil when ids was not supplied and the deduplicated ids otherwise.
func (s *TaskService) validateAssignees(ctx context.Context, ids *[]uint64, verr *ValidationError) ([]uint64, error) {
	if ids == nil {
		return nil, nil
	}

	userIDs := uniqueUint64(*ids)
	missing, err := missingUserIDs(ctx, s.userRepo, userIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range missing {
		verr.Add("assigned_users", fmt.Sprintf(MsgObjectNotExist, id))
	}

	return userIDs, nil
}

// applyTaskPatch copies valid supplied fields onto task and records a
// message for every invalid one
func applyTaskPatch(task *models.Task, patch TaskPatch, requireName bool, verr *ValidationError) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		switch {
		case name == "":
			verr.Add("name", MsgFieldBlank)
		case utf8.RuneCountInString(name) > constants.MaxTaskNameLength:
			verr.Add("name", fmt.Sprintf(MsgMaxLength, constants.MaxTaskNameLength))
		default:
			task.Name = name
		}
	} else if requireName {
		verr.Add("name", MsgFieldRequired)
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}

	if patch.TaskType != nil {
		if patch.TaskType.IsValid() {
			task.TaskType = *patch.TaskType
		} else {
			verr.Add("task_type", fmt.Sprintf(MsgInvalidChoice, string(*patch.TaskType)))
		}
	}

	if patch.Status != nil {
		if patch.Status.IsValid() {
			task.Status = *patch.Status
		} else {
			verr.Add("status", fmt.Sprintf(MsgInvalidChoice, string(*patch.Status)))
		}
	}
}

// missingUserIDs returns the ids that do not belong to a user, in input order
func missingUserIDs(ctx context.Context, userRepo repository.UserRepository, ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	existing, err := userRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify users: %w", err)
	}

	found := make(map[uint64]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []uint64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
