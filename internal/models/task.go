package models

import (
	"time"
)

type TaskType string

const (
	TaskTypeFeature     TaskType = "FEATURE"
	TaskTypeBug         TaskType = "BUG"
	TaskTypeImprovement TaskType = "IMPROVEMENT"
	TaskTypeMaintenance TaskType = "MAINTENANCE"
)

// TaskTypes lists every recognized task type
var TaskTypes = []TaskType{
	TaskTypeFeature,
	TaskTypeBug,
	TaskTypeImprovement,
	TaskTypeMaintenance,
}

// IsValid reports whether t is a recognized task type
func (t TaskType) IsValid() bool {
	for _, v := range TaskTypes {
		if t == v {
			return true
		}
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// TaskStatuses lists every recognized task status
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// IsValid reports whether s is a recognized task status
func (s TaskStatus) IsValid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	TaskType    TaskType   `gorm:"type:varchar(20);not null;default:'FEATURE'" json:"task_type"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
