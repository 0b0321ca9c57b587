package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

// RequireIDParam parses the :id path parameter and stores it in context.
// Malformed ids are answered with 404 like unknown ones.
func RequireIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.NotFound(c, "")
			return
		}

		c.Set(constants.ContextKeyResourceID, id)
		c.Next()
	}
}

// GetIDParam retrieves the parsed :id path parameter from context
func GetIDParam(c *gin.Context) (uint64, bool) {
	id, exists := c.Get(constants.ContextKeyResourceID)
	if !exists {
		return 0, false
	}

	v, ok := id.(uint64)
	return v, ok
}
