package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/shared/constants"
)

// Pagination holds parsed pagination parameters. PageSize 0 asks for every
// matching item.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string. Without
// page_size the result is unpaginated; an explicit size is capped at
// MaxPageSize.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", 0)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// parseQueryInt parses a positive integer query parameter.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
