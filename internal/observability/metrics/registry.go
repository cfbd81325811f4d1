// Package metrics provides centralized Prometheus metrics for business-level
// operations: article publishing, view counting, and authentication.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// ArticlesTotal tracks the number of stored articles per language
	ArticlesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the store",
		},
		[]string{"language"},
	)

	// ArticleViewsTotal counts recorded article views
	ArticleViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of recorded article views",
		},
		[]string{"language"},
	)

	// ArticlesPublishedTotal counts published articles by language and category
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
		[]string{"language", "category"},
	)

	// AuthAttemptsTotal counts login attempts by result
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"}, // status: success, failure
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)
