package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nashra/internal/common/pagination"
	"nashra/internal/domain/entity"
	"nashra/internal/repository"
)

// DefaultReadMinutes is assigned when a new article omits its reading time.
const DefaultReadMinutes = 5

// ListQuery narrows and paginates an article listing. Zero values leave the
// corresponding dimension unrestricted.
type ListQuery struct {
	Category   string
	Language   string
	IsBreaking *bool
	Limit      int
	Offset     int
}

// Service provides article management use cases.
// It holds the business rules (defaults, merge semantics, id validation) and
// delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult carries one page of articles plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

func (q ListQuery) filter() repository.ArticleFilter {
	return repository.ArticleFilter{
		Category:   q.Category,
		Language:   q.Language,
		IsBreaking: q.IsBreaking,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
}

// List retrieves one page of articles matching the query, along with the
// total match count so clients can page through the rest.
func (s *Service) List(ctx context.Context, q ListQuery) (*PaginatedResult, error) {
	filter := q.filter()

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:  total,
			Limit:  q.Limit,
			Offset: q.Offset,
		},
	}, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not a UUID, and
// ErrArticleNotFound if no article has it.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input, applies creation defaults and persists the
// article. The returned article carries the store-assigned id.
//
// Defaults: readMinutes 5 when omitted, publishedAt now when omitted,
// views always 0 and updatedAt always now regardless of input.
func (s *Service) Create(ctx context.Context, in entity.NewArticleInput) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	readMinutes := in.ReadMinutes
	if readMinutes == 0 {
		readMinutes = DefaultReadMinutes
	}
	publishedAt := now
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}

	art := &entity.Article{
		Title:       in.Title,
		Summary:     in.Summary,
		Content:     in.Content,
		Category:    in.Category,
		Language:    in.Language,
		Author:      in.Author,
		ImageURL:    in.ImageURL,
		ReadMinutes: readMinutes,
		Views:       0,
		IsBreaking:  in.IsBreaking,
		PublishedAt: publishedAt,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update merges the present fields of the input into the stored article and
// persists the result. updatedAt is reset on every update, even one that
// changes nothing else. The view counter cannot be touched here; the input
// has no field for it.
func (s *Service) Update(ctx context.Context, id string, in entity.UpdateArticleInput) (*entity.Article, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Summary != nil {
		art.Summary = *in.Summary
	}
	if in.Content != nil {
		art.Content = in.Content
	}
	if in.Category != nil {
		art.Category = *in.Category
	}
	if in.Language != nil {
		art.Language = *in.Language
	}
	if in.Author != nil {
		art.Author = *in.Author
	}
	if in.ImageURL != nil {
		art.ImageURL = in.ImageURL
	}
	if in.ReadMinutes != nil {
		art.ReadMinutes = *in.ReadMinutes
	}
	if in.IsBreaking != nil {
		art.IsBreaking = *in.IsBreaking
	}
	if in.PublishedAt != nil {
		art.PublishedAt = *in.PublishedAt
	}
	art.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrArticleNotFound if no article has it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}

// IncrementViews adds one view to the article. The increment is atomic in
// the store, so concurrent calls all land.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		if err == entity.ErrNotFound {
			return ErrArticleNotFound
		}
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidArticleID
	}
	return nil
}
