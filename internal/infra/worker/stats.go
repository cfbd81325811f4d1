// Package worker runs periodic background jobs for the API server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"nashra/internal/domain/entity"
	"nashra/internal/observability/metrics"
	"nashra/internal/repository"
)

const refreshTimeout = 30 * time.Second

// StatsWorker periodically refreshes the per-language article count gauges
// so dashboards track store growth without querying the API.
type StatsWorker struct {
	Repo     repository.ArticleRepository
	Logger   *slog.Logger
	Schedule string // cron spec, e.g. "@every 1m"

	cron *cron.Cron
}

// Start registers the refresh job and starts the scheduler. The gauges are
// refreshed once immediately so they are populated before the first tick.
func (w *StatsWorker) Start() error {
	w.cron = cron.New()

	if _, err := w.cron.AddFunc(w.Schedule, w.refresh); err != nil {
		return err
	}

	w.refresh()
	w.cron.Start()

	w.Logger.Info("stats worker started", slog.String("schedule", w.Schedule))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (w *StatsWorker) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.Logger.Info("stats worker stopped")
}

func (w *StatsWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	for _, lang := range []entity.Language{entity.LanguageEnglish, entity.LanguageArabic} {
		count, err := w.Repo.Count(ctx, repository.ArticleFilter{Language: string(lang)})
		if err != nil {
			w.Logger.Error("failed to refresh article stats",
				slog.String("language", string(lang)),
				slog.String("error", err.Error()))
			continue
		}
		metrics.UpdateArticlesTotal(string(lang), count)
	}
}
