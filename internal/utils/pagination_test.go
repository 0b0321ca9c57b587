package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{"defaults", "", PaginationParams{Page: 1, PageSize: 10}},
		{"explicit", "?page=3&page_size=25", PaginationParams{Page: 3, PageSize: 25}},
		{"garbage falls back", "?page=abc&page_size=-4", PaginationParams{Page: 1, PageSize: 10}},
		{"page size capped", "?page_size=1000", PaginationParams{Page: 1, PageSize: 100}},
		{"page capped", "?page=922337203685477582&page_size=100", PaginationParams{Page: 1_000_000, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext("/tasks/" + tt.query)
			assert.Equal(t, tt.want, GetPaginationParams(c))
		})
	}
}

func TestPaginationParams_Links(t *testing.T) {
	c := newContext("/tasks/?page=2&page_size=2&foo=bar")
	params := GetPaginationParams(c)

	next, previous := params.Links(c, 5)
	require.NotNil(t, next)
	require.NotNil(t, previous)
	assert.Equal(t, "http://example.com/tasks/?foo=bar&page=3&page_size=2", *next)
	assert.Equal(t, "http://example.com/tasks/?foo=bar&page_size=2", *previous)

	next, _ = params.Links(c, 4)
	assert.Nil(t, next)
}

func TestPaginationParams_OutOfRange(t *testing.T) {
	assert.False(t, PaginationParams{Page: 1, PageSize: 10}.OutOfRange(0))
	assert.False(t, PaginationParams{Page: 2, PageSize: 10}.OutOfRange(11))
	assert.True(t, PaginationParams{Page: 2, PageSize: 10}.OutOfRange(10))
}
