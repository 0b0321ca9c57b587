package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/utils"
)

type UserHandler struct {
	userService       *services.UserService
	assignmentService *services.AssignmentService
	log               *slog.Logger
}

func NewUserHandler(userService *services.UserService, assignmentService *services.AssignmentService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		userService:       userService,
		assignmentService: assignmentService,
		log:               log,
	}
}

// ListUsers returns a page of users
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if params.OutOfRange(total) {
		apierrors.NotFound(c, "Invalid page.")
		return
	}

	c.JSON(http.StatusOK, newPage(c, params, total, dto.ToUserDTOs(users)))
}

// GetUser returns a single user
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, _ := middleware.GetIDParam(c)

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ListUserTasks returns a page of the tasks assigned to a user, each with
// its assigned users expanded
func (h *UserHandler) ListUserTasks(c *gin.Context) {
	userID, _ := middleware.GetIDParam(c)
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.assignmentService.ListTasksForUser(c.Request.Context(), userID, params.Page, params.PageSize)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if params.OutOfRange(total) {
		apierrors.NotFound(c, "Invalid page.")
		return
	}

	c.JSON(http.StatusOK, newPage(c, params, total, dto.ToTaskDetailDTOs(tasks)))
}
