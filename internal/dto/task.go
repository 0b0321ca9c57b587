package dto

import (
	"time"

	"github.com/yukikurage/task-tracker/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// TaskAssignmentDTO represents a task assignment in API responses
type TaskAssignmentDTO struct {
	Task       uint64    `json:"task"`
	User       uint64    `json:"user"`
	AssignedAt time.Time `json:"assigned_at"`
}

// TaskDTO represents a task in list, create and update responses.
// AssignedUsers holds user IDs.
type TaskDTO struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"created_at"`
	TaskType      models.TaskType   `json:"task_type"`
	CompletedAt   *time.Time        `json:"completed_at"`
	Status        models.TaskStatus `json:"status"`
	UpdatedAt     time.Time         `json:"updated_at"`
	AssignedUsers []uint64          `json:"assigned_users"`
}

// TaskDetailDTO represents a task with its assigned users expanded
type TaskDetailDTO struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"created_at"`
	TaskType      models.TaskType   `json:"task_type"`
	CompletedAt   *time.Time        `json:"completed_at"`
	Status        models.TaskStatus `json:"status"`
	UpdatedAt     time.Time         `json:"updated_at"`
	AssignedUsers []UserDTO         `json:"assigned_users"`
}

// Page is a paginated list response
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Mobile:   user.Mobile,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToTaskAssignmentDTO converts a TaskAssignment model to TaskAssignmentDTO
func ToTaskAssignmentDTO(assignment models.TaskAssignment) TaskAssignmentDTO {
	return TaskAssignmentDTO{
		Task:       assignment.TaskID,
		User:       assignment.UserID,
		AssignedAt: assignment.AssignedAt,
	}
}

// ToTaskAssignmentDTOs converts a slice of assignments
func ToTaskAssignmentDTOs(assignments []models.TaskAssignment) []TaskAssignmentDTO {
	items := make([]TaskAssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = ToTaskAssignmentDTO(assignment)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO. Assignments must be preloaded
// for AssignedUsers to be filled.
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:            task.ID,
		Name:          task.Name,
		Description:   task.Description,
		CreatedAt:     task.CreatedAt,
		TaskType:      task.TaskType,
		CompletedAt:   task.CompletedAt,
		Status:        task.Status,
		UpdatedAt:     task.UpdatedAt,
		AssignedUsers: make([]uint64, len(task.Assignments)),
	}

	for i, assignment := range task.Assignments {
		dto.AssignedUsers[i] = assignment.UserID
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToTaskDetailDTO converts a Task model with preloaded assignment users
func ToTaskDetailDTO(task models.Task) TaskDetailDTO {
	dto := TaskDetailDTO{
		ID:            task.ID,
		Name:          task.Name,
		Description:   task.Description,
		CreatedAt:     task.CreatedAt,
		TaskType:      task.TaskType,
		CompletedAt:   task.CompletedAt,
		Status:        task.Status,
		UpdatedAt:     task.UpdatedAt,
		AssignedUsers: make([]UserDTO, len(task.Assignments)),
	}

	for i, assignment := range task.Assignments {
		dto.AssignedUsers[i] = ToUserDTO(assignment.User)
	}

	return dto
}

// ToTaskDetailDTOs converts a slice of tasks to detail views
func ToTaskDetailDTOs(tasks []models.Task) []TaskDetailDTO {
	items := make([]TaskDetailDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDetailDTO(task)
	}
	return items
}
