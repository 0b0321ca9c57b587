package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/utils"
)

// respondError maps service errors onto API error responses
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var verr *services.ValidationError
	var invalidIDs *services.InvalidUserIDsError

	switch {
	case errors.Is(err, errInvalidBody):
		apierrors.BadRequest(c, "Invalid request body")
	case errors.As(err, &verr):
		apierrors.BadRequestWithDetails(c, "Invalid input", verr.Fields)
	case errors.As(err, &invalidIDs):
		apierrors.BadRequestWithDetails(c,
			fmt.Sprintf("Invalid user IDs: %s", formatIDs(invalidIDs.IDs)),
			gin.H{"invalid_user_ids": invalidIDs.IDs},
		)
	case errors.Is(err, services.ErrNoUserIDsProvided):
		apierrors.BadRequest(c, "No user IDs provided")
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "")
	default:
		_ = c.Error(err)
		log.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(c, "")
	}
}

// newPage wraps results in the paginated envelope
func newPage[T any](c *gin.Context, params utils.PaginationParams, total int64, results []T) dto.Page[T] {
	next, previous := params.Links(c, total)
	return dto.Page[T]{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// formatIDs renders ids as [1, 2, 3]
func formatIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
