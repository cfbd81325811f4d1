package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nashra/internal/domain/entity"
	"nashra/internal/handler/http/respond"
	"nashra/internal/observability/metrics"
	artUC "nashra/internal/usecase/article"
)

// createRequest deliberately has no id, views, or updatedAt fields: those are
// server-assigned, and DisallowUnknownFields rejects payloads that try to
// smuggle them in.
type createRequest struct {
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Content     *string `json:"content"`
	Category    string  `json:"category"`
	Language    string  `json:"language"`
	Author      string  `json:"author"`
	ImageURL    *string `json:"imageUrl"`
	ReadMinutes int     `json:"readMinutes"`
	IsBreaking  bool    `json:"isBreaking"`
	PublishedAt *string `json:"publishedAt"`
}

// CreateHandler serves POST /api/articles.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var pAt *time.Time
	if req.PublishedAt != nil {
		t, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("publishedAt must be in RFC3339 format"))
			return
		}
		pAt = &t
	}

	created, err := h.Svc.Create(r.Context(), entity.NewArticleInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Category:    entity.Category(req.Category),
		Language:    entity.Language(req.Language),
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		ReadMinutes: req.ReadMinutes,
		IsBreaking:  req.IsBreaking,
		PublishedAt: pAt,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	metrics.RecordArticlePublished(string(created.Language), string(created.Category))

	respond.JSON(w, http.StatusCreated, fromEntity(created))
}
