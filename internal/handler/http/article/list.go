package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nashra/internal/common/pagination"
	"nashra/internal/handler/http/respond"
	"nashra/internal/observability/logging"
	artUC "nashra/internal/usecase/article"
)

// ListHandler serves GET /api/articles. Results can be narrowed by category,
// language and isBreaking query parameters and are paginated with limit/offset.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	query := artUC.ListQuery{
		Category: r.URL.Query().Get("category"),
		Language: r.URL.Query().Get("language"),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if raw := r.URL.Query().Get("isBreaking"); raw != "" {
		breaking, err := strconv.ParseBool(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("isBreaking must be a boolean"))
			return
		}
		query.IsBreaking = &breaking
	}

	result, err := h.Svc.List(ctx, query)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"category", query.Category,
			"language", query.Language,
			"limit", query.Limit,
			"offset", query.Offset)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, fromEntity(item))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	logger.Info("article list served",
		"returned_count", len(dtos),
		"total", result.Pagination.Total,
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, response)
}
