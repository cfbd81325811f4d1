package postgres

import (
	"fmt"
	"strings"

	"nashra/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listings.
// The builder is shared between COUNT and SELECT queries so both always
// apply identical predicates. It uses PostgreSQL numbered placeholders.
type ArticleQueryBuilder struct{}

func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause translates an ArticleFilter into a WHERE clause and its
// arguments. Predicates are conjunctive; dimensions the filter leaves open
// produce no predicate at all. The category "all" escape value is resolved
// here, before any SQL is built. Returns an empty clause when the filter
// restricts nothing.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter) (clause string, args []any) {
	var conditions []string
	paramIndex := 1

	if filter.HasCategory() {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, filter.Category)
		paramIndex++
	}
	if filter.Language != "" {
		conditions = append(conditions, fmt.Sprintf("language = $%d", paramIndex))
		args = append(args, filter.Language)
		paramIndex++
	}
	if filter.IsBreaking != nil {
		conditions = append(conditions, fmt.Sprintf("is_breaking = $%d", paramIndex))
		args = append(args, *filter.IsBreaking)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
