package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"nashra/internal/domain/entity"
	"nashra/internal/repository"
)

const articleColumns = `id, title, summary, content, category, language, author, image_url, read_minutes, views, is_breaking, published_at, updated_at`

type ArticleRepo struct {
	db           DBTX
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var article entity.Article
	if err := rows.Scan(&article.ID, &article.Title, &article.Summary, &article.Content,
		&article.Category, &article.Language, &article.Author, &article.ImageURL,
		&article.ReadMinutes, &article.Views, &article.IsBreaking,
		&article.PublishedAt, &article.UpdatedAt); err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns matching articles, newest first. Rows without a publication
// time sort last, matching the in-memory adapter.
func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY published_at DESC NULLS LAST`, articleColumns, whereClause)

	paramIndex := len(args) + 1
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramIndex)
		args = append(args, filter.Limit)
		paramIndex++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", paramIndex)
		args = append(args, filter.Offset)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 20)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// Count returns the number of matching articles, ignoring Limit and Offset.
func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Summary, &article.Content,
			&article.Category, &article.Language, &article.Author, &article.ImageURL,
			&article.ReadMinutes, &article.Views, &article.IsBreaking,
			&article.PublishedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Create inserts the article. The database assigns the id, which is written
// back into the entity.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, summary, content, category, language, author, image_url, read_minutes, views, is_breaking, published_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Summary, article.Content,
		article.Category, article.Language, article.Author, article.ImageURL,
		article.ReadMinutes, article.Views, article.IsBreaking,
		article.PublishedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title        = $1,
       summary      = $2,
       content      = $3,
       category     = $4,
       language     = $5,
       author       = $6,
       image_url    = $7,
       read_minutes = $8,
       views        = $9,
       is_breaking  = $10,
       published_at = $11,
       updated_at   = $12
WHERE id = $13`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Summary, article.Content,
		article.Category, article.Language, article.Author, article.ImageURL,
		article.ReadMinutes, article.Views, article.IsBreaking,
		article.PublishedAt, article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

// IncrementViews bumps the view counter in a single UPDATE so the arithmetic
// happens inside the database and concurrent requests never lose counts.
func (repo *ArticleRepo) IncrementViews(ctx context.Context, id string) error {
	const query = `
UPDATE articles SET
       views      = views + 1,
       updated_at = now()
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("IncrementViews: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
