// Package pathutil provides URL path helpers shared by the HTTP handlers.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID segment of a URL path is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and validates a UUID path segment.
// It removes the prefix, strips anything after the next slash, and parses
// the remainder as a UUID.
//
// Example:
//
//	id, err := ExtractID("/api/articles/4f6b.../views", "/api/articles/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idx := strings.IndexByte(idStr, '/'); idx != -1 {
		idStr = idStr[:idx]
	}
	if _, err := uuid.Parse(idStr); err != nil {
		return "", ErrInvalidID
	}
	return idStr, nil
}
