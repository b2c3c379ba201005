// Package pathutil contains helpers for parsing identifiers out of URL paths.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an ID path segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a numeric path segment (typically from Request.PathValue)
// as a positive int64.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
