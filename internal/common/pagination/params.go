package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Limit  int // Items per page
	Offset int // Items to skip before the first result
}

// ParseQueryParams parses limit and offset from the request query string.
// Missing parameters fall back to config defaults; invalid values are an
// error rather than silently clamped, so clients learn about their mistake.
//
// Query parameters:
//   - limit: items per page, between 1 and config.MaxLimit
//   - offset: items to skip, zero or positive
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Limit:  config.DefaultLimit,
		Offset: 0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be zero or a positive integer")
		}
		params.Offset = offset
	}

	return params, nil
}
