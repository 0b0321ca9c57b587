package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"gorm.io/gorm"
)

// AssignmentService handles the task-user assignment relation
type AssignmentService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *AssignmentService {
	return &AssignmentService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// AssignUsers assigns every user to the task, or none of them if any id is
// unknown. Existing assignments are returned unchanged. The result follows
// the order of userIDs with duplicates removed.
func (s *AssignmentService) AssignUsers(ctx context.Context, taskID uint64, userIDs []uint64) ([]models.TaskAssignment, error) {
	if err := s.ensureTask(ctx, taskID); err != nil {
		return nil, err
	}

	if len(userIDs) == 0 {
		return nil, ErrNoUserIDsProvided
	}

	ids := uniqueUint64(userIDs)

	missing, err := missingUserIDs(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &InvalidUserIDsError{IDs: missing}
	}

	assignments, err := s.taskRepo.AssignUsers(ctx, taskID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to assign users: %w", err)
	}

	return assignments, nil
}

// UnassignUsers removes the users' assignments from the task and returns
// how many were removed. Users that were not assigned are ignored.
func (s *AssignmentService) UnassignUsers(ctx context.Context, taskID uint64, userIDs []uint64) (int64, error) {
	if err := s.ensureTask(ctx, taskID); err != nil {
		return 0, err
	}

	if len(userIDs) == 0 {
		return 0, ErrNoUserIDsProvided
	}

	removed, err := s.taskRepo.UnassignUsers(ctx, taskID, uniqueUint64(userIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to unassign users: %w", err)
	}

	return removed, nil
}

// ListTasksForUser returns the tasks assigned to a user, each with all of
// its assigned users, ordered by task ID
func (s *AssignmentService) ListTasksForUser(ctx context.Context, userID uint64, page, pageSize int) ([]models.Task, int64, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to find user: %w", err)
	}

	tasks, total, err := s.taskRepo.List(ctx, repository.TaskFilter{
		AssignedUserID: &userID,
		WithAssignees:  true,
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks for user: %w", err)
	}

	return tasks, total, nil
}

// GetTaskDetail returns a task with its assigned users loaded
func (s *AssignmentService) GetTaskDetail(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, repository.WithAssignees())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

func (s *AssignmentService) ensureTask(ctx context.Context, taskID uint64) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}
	return nil
}
