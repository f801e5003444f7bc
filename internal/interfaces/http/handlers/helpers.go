package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/constants"
	"flowdesk/internal/shared/query"
	"flowdesk/internal/shared/utils"
)

// parseBaseFilter builds a BaseFilter from the standard pagination and
// sort query parameters.
func parseBaseFilter(c *gin.Context) query.BaseFilter {
	p := utils.ParsePagination(c)
	return query.BaseFilter{
		PageFilter: query.PageFilter{Page: p.Page, PageSize: p.PageSize},
		SortFilter: query.SortFilter{
			SortBy:    c.Query("sort_by"),
			SortOrder: c.Query("sort_order"),
		},
	}
}

func currentRole(c *gin.Context) authorization.UserRole {
	return authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
}

func queryString(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func queryUint(c *gin.Context, key string) *uint {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			return &id
		}
	}
	return nil
}

func queryInt(c *gin.Context, key string) *int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func queryBool(c *gin.Context, key string) *bool {
	if v := c.Query(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
