// Package listquery parses paging query parameters and slices in-memory
// lists. Collections here are small (tens to low hundreds of records), so
// pages are cut after the full list is loaded.
package listquery

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 200
)

// Params holds validated paging parameters.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts and clamps page/limit from the query string.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Apply cuts the requested page out of items. Pages past the end are empty,
// never out of range.
func Apply[T any](items []T, p Params) []T {
	start := (p.Page - 1) * p.Limit
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
