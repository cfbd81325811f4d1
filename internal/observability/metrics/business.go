package metrics

import (
	"time"
)

// RecordArticleView records a view against an article in the given language.
func RecordArticleView(language string) {
	ArticleViewsTotal.WithLabelValues(language).Inc()
}

// RecordArticlePublished records a newly published article.
func RecordArticlePublished(language, category string) {
	ArticlesPublishedTotal.WithLabelValues(language, category).Inc()
}

// RecordAuthAttempt records the result of a login attempt.
func RecordAuthAttempt(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	AuthAttemptsTotal.WithLabelValues(status).Inc()
}

// UpdateArticlesTotal updates the stored-article gauge for a language.
// This gauge should be refreshed periodically to reflect the current state.
func UpdateArticlesTotal(language string, count int64) {
	ArticlesTotal.WithLabelValues(language).Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_articles", "insert_article").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
