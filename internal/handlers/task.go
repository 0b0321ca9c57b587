package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/utils"
)

type TaskHandler struct {
	taskService       *services.TaskService
	assignmentService *services.AssignmentService
	log               *slog.Logger
}

func NewTaskHandler(taskService *services.TaskService, assignmentService *services.AssignmentService, log *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService:       taskService,
		assignmentService: assignmentService,
		log:               log,
	}
}

// ListTasks returns a page of tasks, assigned users as IDs
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if params.OutOfRange(total) {
		apierrors.NotFound(c, "Invalid page.")
		return
	}

	c.JSON(http.StatusOK, newPage(c, params, total, dto.ToTaskDTOs(tasks)))
}

// GetTask returns a task with its assigned users expanded
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, _ := middleware.GetIDParam(c)

	task, err := h.assignmentService.GetTaskDetail(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDetailDTO(*task))
}

// CreateTask creates a new task, optionally with assigned users
func (h *TaskHandler) CreateTask(c *gin.Context) {
	patch, err := bindTaskPatch(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces a task's fields (PUT). name is required.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdateTask updates only the supplied fields (PATCH)
func (h *TaskHandler) PartialUpdateTask(c *gin.Context) {
	h.update(c, true)
}

func (h *TaskHandler) update(c *gin.Context, partial bool) {
	taskID, _ := middleware.GetIDParam(c)

	patch, err := bindTaskPatch(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, patch, partial)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task and its assignments
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, _ := middleware.GetIDParam(c)

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignUsers assigns users to a task
// Request body: {"user_ids": [1, 2, 3]}
func (h *TaskHandler) AssignUsers(c *gin.Context) {
	taskID, _ := middleware.GetIDParam(c)

	userIDs, err := bindUserIDs(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	assignments, err := h.assignmentService.AssignUsers(c.Request.Context(), taskID, userIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskAssignmentDTOs(assignments))
}

// UnassignUsers removes users from a task
// Request body: {"user_ids": [1, 2, 3]}
func (h *TaskHandler) UnassignUsers(c *gin.Context) {
	taskID, _ := middleware.GetIDParam(c)

	userIDs, err := bindUserIDs(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	removed, err := h.assignmentService.UnassignUsers(c.Request.Context(), taskID, userIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Removed %d task assignments", removed),
	})
}
