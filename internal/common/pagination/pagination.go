// Package pagination provides offset-based pagination parameter parsing and
// arithmetic shared by the listing handlers.
package pagination

import (
	"net/http"
	"strconv"
)

// Config holds the pagination defaults. Values can be overridden from the
// environment at startup.
type Config struct {
	DefaultPage     int
	DefaultPageSize int
}

// DefaultConfig returns the stock configuration: page=1, pageSize=10.
func DefaultConfig() Config {
	return Config{DefaultPage: 1, DefaultPageSize: 10}
}

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page     int // 1-based page number
	PageSize int // items per page
}

// ParseQueryParams parses page and pageSize from the request query string,
// falling back to the configured defaults when a parameter is absent or not
// an integer.
//
// Zero or negative values are deliberately passed through unvalidated: the
// offset arithmetic below is reproduced literally and a negative offset is
// left for the store to reject.
func ParseQueryParams(r *http.Request, cfg Config) Params {
	params := Params{Page: cfg.DefaultPage, PageSize: cfg.DefaultPageSize}

	if s := r.URL.Query().Get("page"); s != "" {
		if page, err := strconv.Atoi(s); err == nil {
			params.Page = page
		}
	}
	if s := r.URL.Query().Get("pageSize"); s != "" {
		if size, err := strconv.Atoi(s); err == nil {
			params.PageSize = size
		}
	}
	return params
}

// CalculateOffset computes the database OFFSET for a 1-based page number.
//
// Formula: offset = (page - 1) * pageSize
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
