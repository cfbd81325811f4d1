package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total  int64 `json:"total"`  // Total number of items across all pages
	Limit  int   `json:"limit"`  // Items per page
	Offset int   `json:"offset"` // Items skipped before the first result
}

// Response is a generic paginated response wrapper.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a new paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
