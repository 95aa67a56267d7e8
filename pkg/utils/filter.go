package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"admin-system/pkg/types"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ParseListFilter reads the common list query parameters (page, limit, search)
// with sane bounds.
func ParseListFilter(c echo.Context) types.Filter {
	filter := types.Filter{
		Search:         c.QueryParam("search"),
		Page:           1,
		Limit:          defaultPageLimit,
		WithPagination: true,
	}

	if raw := c.QueryParam("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			if limit > maxPageLimit {
				limit = maxPageLimit
			}
			filter.Limit = limit
		}
	}

	filter.Offset = (filter.Page - 1) * filter.Limit
	return filter
}
