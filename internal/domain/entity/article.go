// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Category identifies the news section an article belongs to.
// The enumeration is closed; values outside it are rejected at validation time.
type Category string

const (
	CategoryWorld      Category = "world"
	CategoryPolitics   Category = "politics"
	CategoryTechnology Category = "technology"
	CategorySports     Category = "sports"
	CategoryBusiness   Category = "business"
)

// Categories lists every valid article category.
func Categories() []Category {
	return []Category{
		CategoryWorld,
		CategoryPolitics,
		CategoryTechnology,
		CategorySports,
		CategoryBusiness,
	}
}

// Valid reports whether the category is one of the closed enumeration values.
func (c Category) Valid() bool {
	switch c {
	case CategoryWorld, CategoryPolitics, CategoryTechnology, CategorySports, CategoryBusiness:
		return true
	}
	return false
}

// Language identifies the publication language of an article.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// Article represents a published news article.
// Content and ImageURL are nullable: nil means the column is NULL, never "".
// ID, Views and UpdatedAt are server-assigned and cannot be set by callers.
type Article struct {
	ID          string
	Title       string
	Summary     string
	Content     *string
	Category    Category
	Language    Language
	Author      string
	ImageURL    *string
	ReadMinutes int
	Views       int
	IsBreaking  bool
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the article. Stores hand out clones so that
// callers can never mutate persisted state through a shared pointer.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	if a.Content != nil {
		v := *a.Content
		c.Content = &v
	}
	if a.ImageURL != nil {
		v := *a.ImageURL
		c.ImageURL = &v
	}
	return &c
}
