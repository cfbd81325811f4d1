package article

import (
	"errors"
	"net/http"

	"nashra/internal/handler/http/pathutil"
	"nashra/internal/handler/http/respond"
	"nashra/internal/observability/metrics"
	artUC "nashra/internal/usecase/article"
)

// ViewsHandler serves POST /api/articles/{id}/views. The increment happens
// in the store so concurrent requests never lose counts.
type ViewsHandler struct{ Svc *artUC.Service }

func (h ViewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	if err := h.Svc.IncrementViews(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordArticleView(string(art.Language))

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Views incremented"})
}
