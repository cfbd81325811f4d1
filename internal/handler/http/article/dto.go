// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, creating, updating, and deleting articles,
// plus the view counter endpoint.
package article

import (
	"time"

	"nashra/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     *string   `json:"content"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	Author      string    `json:"author"`
	ImageURL    *string   `json:"imageUrl"`
	ReadMinutes int       `json:"readMinutes"`
	Views       int       `json:"views"`
	IsBreaking  bool      `json:"isBreaking"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func fromEntity(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Summary:     a.Summary,
		Content:     a.Content,
		Category:    string(a.Category),
		Language:    string(a.Language),
		Author:      a.Author,
		ImageURL:    a.ImageURL,
		ReadMinutes: a.ReadMinutes,
		Views:       a.Views,
		IsBreaking:  a.IsBreaking,
		PublishedAt: a.PublishedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
