package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskType_IsValid(t *testing.T) {
	for _, tt := range TaskTypes {
		assert.True(t, tt.IsValid(), tt)
	}
	assert.False(t, TaskType("INVALID_TYPE").IsValid())
	assert.False(t, TaskType("feature").IsValid())
	assert.False(t, TaskType("").IsValid())
}

func TestTaskStatus_IsValid(t *testing.T) {
	for _, s := range TaskStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, TaskStatus("DONE").IsValid())
	assert.False(t, TaskStatus("").IsValid())
}
