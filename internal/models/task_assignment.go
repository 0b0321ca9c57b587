package models

import (
	"time"
)

// TaskAssignment links one task to one user. The (task_id, user_id) pair is
// unique; AssignedAt is written on insert only.
type TaskAssignment struct {
	ID         uint64    `gorm:"primarykey" json:"-"`
	TaskID     uint64    `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"task"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"user"`
	AssignedAt time.Time `gorm:"<-:create;not null;autoCreateTime" json:"assigned_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
