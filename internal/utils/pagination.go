package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
}

// GetPaginationParams extracts and validates the page and page_size query
// parameters. Invalid values fall back to the defaults and oversized ones
// are capped.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if err != nil || page < constants.MinPage {
		page = constants.MinPage
	}
	// keeps (page-1)*pageSize well inside int
	if page > constants.MaxPage {
		page = constants.MaxPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// OutOfRange reports whether the page starts past the last result.
// The first page is always in range.
func (p PaginationParams) OutOfRange(total int64) bool {
	return p.Page > constants.MinPage && int64((p.Page-1)*p.PageSize) >= total
}

// Links returns the URLs of the next and previous pages, or nil when there
// is no such page. Other query parameters are preserved.
func (p PaginationParams) Links(c *gin.Context, total int64) (next, previous *string) {
	if int64(p.Page*p.PageSize) < total {
		next = pageURL(c, p.Page+1)
	}
	if p.Page > constants.MinPage {
		previous = pageURL(c, p.Page-1)
	}
	return next, previous
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	if u.Host == "" {
		u.Host = c.Request.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if c.Request.TLS != nil {
			u.Scheme = "https"
		}
	}

	query := u.Query()
	if page == constants.MinPage {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	link := u.String()
	return &link
}
