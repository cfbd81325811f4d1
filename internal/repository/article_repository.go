// Package repository declares the persistence interfaces the use case layer
// depends on. Two implementations exist: an in-memory store for tests and
// local development, and a PostgreSQL store for production. Both honor the
// same contract so they are interchangeable at process startup.
package repository

import (
	"context"

	"nashra/internal/domain/entity"
)

// FilterAll is the category escape value meaning "no category restriction".
// It is resolved at the query-translation boundary and is never a valid
// stored category.
const FilterAll = "all"

// ArticleFilter narrows an article listing. Every field is independently
// optional; a zero value means "no restriction on that dimension".
type ArticleFilter struct {
	Category   string // "" or FilterAll: no restriction
	Language   string // "": no restriction
	IsBreaking *bool  // nil: no restriction
	Limit      int    // 0: no limit
	Offset     int    // rows to skip, applied after filtering and sorting
}

// HasCategory reports whether the filter restricts by category,
// treating the "all" escape value as no restriction.
func (f ArticleFilter) HasCategory() bool {
	return f.Category != "" && f.Category != FilterAll
}

type ArticleRepository interface {
	// List returns articles matching the filter, ordered by published_at
	// descending (articles without a publication time sort as oldest).
	// Limit/Offset are applied after filtering and sorting.
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	// Count returns the number of articles matching the filter,
	// ignoring Limit and Offset.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// Get returns the article with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// Create persists a new article. The store assigns the id.
	Create(ctx context.Context, article *entity.Article) error
	// Update overwrites the stored article. Returns entity.ErrNotFound
	// if the id does not exist.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article, reporting whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementViews atomically adds 1 to the view counter and resets
	// updated_at. The arithmetic happens inside the store so concurrent
	// increments never lose updates. Returns entity.ErrNotFound if the
	// id does not exist.
	IncrementViews(ctx context.Context, id string) error
}
