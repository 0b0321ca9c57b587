package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
)

var errInvalidBody = errors.New("invalid request body")

// userIDsRequest is the body of assign_users and unassign_users
type userIDsRequest struct {
	UserIDs []uint64 `json:"user_ids"`
}

// bindUserIDs reads {"user_ids": [...]}. An empty body means no ids.
func bindUserIDs(c *gin.Context) ([]uint64, error) {
	var req userIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, errInvalidBody
	}
	return req.UserIDs, nil
}

// bindTaskPatch decodes a task body, keeping track of which fields were
// present. Read-only fields such as id and completed_at are ignored.
func bindTaskPatch(c *gin.Context) (services.TaskPatch, error) {
	var patch services.TaskPatch

	raw := map[string]json.RawMessage{}
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		return patch, errInvalidBody
	}

	verr := services.NewValidationError()

	if v, ok := raw["name"]; ok {
		patch.Name = decodeString(v, "name", verr)
	}
	if v, ok := raw["description"]; ok {
		patch.Description = decodeString(v, "description", verr)
	}
	if v, ok := raw["task_type"]; ok {
		if s := decodeString(v, "task_type", verr); s != nil {
			taskType := models.TaskType(*s)
			patch.TaskType = &taskType
		}
	}
	if v, ok := raw["status"]; ok {
		if s := decodeString(v, "status", verr); s != nil {
			status := models.TaskStatus(*s)
			patch.Status = &status
		}
	}
	if v, ok := raw["assigned_users"]; ok {
		switch {
		case isNull(v):
			verr.Add("assigned_users", services.MsgFieldNull)
		default:
			ids := []uint64{}
			if err := json.Unmarshal(v, &ids); err != nil {
				verr.Add("assigned_users", services.MsgExpectedIDList)
			} else {
				patch.AssignedUsers = &ids
			}
		}
	}

	if verr.HasErrors() {
		return patch, verr
	}
	return patch, nil
}

func decodeString(v json.RawMessage, field string, verr *services.ValidationError) *string {
	if isNull(v) {
		verr.Add(field, services.MsgFieldNull)
		return nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		verr.Add(field, services.MsgNotAString)
		return nil
	}
	return &s
}

func isNull(v json.RawMessage) bool {
	return string(v) == "null"
}
