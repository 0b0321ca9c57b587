package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers_WriteBodyAndAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		want    APIError
	}{
		{
			name:    "not found default message",
			respond: func(c *gin.Context) { NotFound(c, "") },
			status:  http.StatusNotFound,
			want:    APIError{Code: ErrCodeNotFound, Message: "Not found."},
		},
		{
			name:    "bad request",
			respond: func(c *gin.Context) { BadRequest(c, "No user IDs provided") },
			status:  http.StatusBadRequest,
			want:    APIError{Code: ErrCodeInvalidInput, Message: "No user IDs provided"},
		},
		{
			name:    "internal error default message",
			respond: func(c *gin.Context) { InternalError(c, "") },
			status:  http.StatusInternalServerError,
			want:    APIError{Code: ErrCodeInternalError, Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.status, w.Code)

			var got APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "Invalid user IDs: [7]", gin.H{"invalid_user_ids": []uint64{7}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"code":"INVALID_INPUT","message":"Invalid user IDs: [7]","details":{"invalid_user_ids":[7]}}`,
		w.Body.String())
}
