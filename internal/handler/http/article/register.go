package article

import (
	"log/slog"
	"net/http"

	"nashra/internal/common/pagination"
	artUC "nashra/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Reads and the view counter are public; create, update, and delete require
// authentication via the authz middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /api/articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /api/articles/", GetHandler{svc})
	mux.Handle("POST   /api/articles/{id}/views", ViewsHandler{svc})

	mux.Handle("POST   /api/articles", authz(CreateHandler{svc}))
	mux.Handle("PATCH  /api/articles/", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /api/articles/", authz(DeleteHandler{svc}))
}
