// Package memory implements the repository interfaces with mutex-guarded
// maps. It backs local development and tests; the query semantics (filter,
// sort, pagination, atomic view counts) mirror the PostgreSQL adapter.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nashra/internal/domain/entity"
	"nashra/internal/repository"
)

// ArticleRepo stores articles in memory.
type ArticleRepo struct {
	mu       sync.Mutex
	articles map[string]*entity.Article
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{articles: make(map[string]*entity.Article)}
}

func matches(a *entity.Article, filter repository.ArticleFilter) bool {
	if filter.HasCategory() && string(a.Category) != filter.Category {
		return false
	}
	if filter.Language != "" && string(a.Language) != filter.Language {
		return false
	}
	if filter.IsBreaking != nil && a.IsBreaking != *filter.IsBreaking {
		return false
	}
	return true
}

// List returns matching articles ordered by publication time, newest first.
// A zero PublishedAt sorts as oldest, matching NULLS LAST in the SQL adapter.
func (r *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Article
	for _, a := range r.articles {
		if matches(a, filter) {
			result = append(result, a.Clone())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []*entity.Article{}, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	if result == nil {
		result = []*entity.Article{}
	}
	return result, nil
}

// Count returns the number of matching articles, ignoring Limit and Offset.
func (r *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, a := range r.articles {
		if matches(a, filter) {
			n++
		}
	}
	return n, nil
}

// Get returns the article with the given id, or (nil, nil) if absent.
func (r *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

// Create stores a new article, assigning its id.
func (r *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = uuid.NewString()
	r.articles[article.ID] = article.Clone()
	return nil
}

// Update overwrites the stored article.
func (r *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return entity.ErrNotFound
	}
	r.articles[article.ID] = article.Clone()
	return nil
}

// Delete removes an article, reporting whether it existed.
func (r *ArticleRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return false, nil
	}
	delete(r.articles, id)
	return true, nil
}

// IncrementViews adds 1 to the view counter under the store lock, so
// concurrent increments never lose updates.
func (r *ArticleRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return entity.ErrNotFound
	}
	a.Views++
	a.UpdatedAt = time.Now().UTC()
	return nil
}
