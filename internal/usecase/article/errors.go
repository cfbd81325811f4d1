// Package article provides use cases for managing news articles.
// It implements business logic for creating, updating, deleting, and querying
// articles, including validation and interaction with the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not a
	// valid UUID.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
