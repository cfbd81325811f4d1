package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nashra/internal/domain/entity"
	"nashra/internal/handler/http/pathutil"
	"nashra/internal/handler/http/respond"
	artUC "nashra/internal/usecase/article"
)

// updateRequest mirrors createRequest with every field optional. Like the
// create payload it has no id, views, or updatedAt fields.
type updateRequest struct {
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	Language    *string `json:"language"`
	Author      *string `json:"author"`
	ImageURL    *string `json:"imageUrl"`
	ReadMinutes *int    `json:"readMinutes"`
	IsBreaking  *bool   `json:"isBreaking"`
	PublishedAt *string `json:"publishedAt"`
}

// UpdateHandler serves PATCH /api/articles/{id}.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
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

	in := entity.UpdateArticleInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		ReadMinutes: req.ReadMinutes,
		IsBreaking:  req.IsBreaking,
		PublishedAt: pAt,
	}
	if req.Category != nil {
		c := entity.Category(*req.Category)
		in.Category = &c
	}
	if req.Language != nil {
		l := entity.Language(*req.Language)
		in.Language = &l
	}

	updated, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(updated))
}
