package entity

import "time"

// NewArticleInput is the payload accepted when creating an article.
// Server-assigned fields (id, views, updatedAt) are deliberately absent:
// a payload cannot set them because there is nowhere to put them.
type NewArticleInput struct {
	Title       string
	Summary     string
	Content     *string
	Category    Category
	Language    Language
	Author      string
	ImageURL    *string
	ReadMinutes int        // 0 means "use the default"
	IsBreaking  bool
	PublishedAt *time.Time // nil means "publish now"
}

// Validate checks every field and returns the full set of failures.
func (in NewArticleInput) Validate() error {
	var errs ValidationErrors
	if in.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "is required"})
	}
	if in.Summary == "" {
		errs = append(errs, ValidationError{Field: "summary", Message: "is required"})
	}
	if in.Author == "" {
		errs = append(errs, ValidationError{Field: "author", Message: "is required"})
	}
	if !in.Category.Valid() {
		errs = append(errs, ValidationError{Field: "category", Message: "must be one of world, politics, technology, sports, business"})
	}
	if !in.Language.Valid() {
		errs = append(errs, ValidationError{Field: "language", Message: "must be one of en, ar"})
	}
	if in.ReadMinutes < 0 {
		errs = append(errs, ValidationError{Field: "readMinutes", Message: "must be a positive integer"})
	}
	if in.ImageURL != nil {
		if err := ValidateImageURL(*in.ImageURL); err != nil {
			errs = append(errs, ValidationError{Field: "imageUrl", Message: err.Error()})
		}
	}
	return errs.OrNil()
}

// UpdateArticleInput is the partial payload accepted when updating an article.
// Nil fields are left untouched; an input with no fields set is a valid no-op
// update (the store still resets updatedAt). Views has no representation here:
// the dedicated increment operation is the only mutator for that counter.
type UpdateArticleInput struct {
	Title       *string
	Summary     *string
	Content     *string
	Category    *Category
	Language    *Language
	Author      *string
	ImageURL    *string
	ReadMinutes *int
	IsBreaking  *bool
	PublishedAt *time.Time
}

// Validate applies the insert rules to every field that is present.
func (in UpdateArticleInput) Validate() error {
	var errs ValidationErrors
	if in.Title != nil && *in.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "cannot be empty"})
	}
	if in.Summary != nil && *in.Summary == "" {
		errs = append(errs, ValidationError{Field: "summary", Message: "cannot be empty"})
	}
	if in.Author != nil && *in.Author == "" {
		errs = append(errs, ValidationError{Field: "author", Message: "cannot be empty"})
	}
	if in.Category != nil && !in.Category.Valid() {
		errs = append(errs, ValidationError{Field: "category", Message: "must be one of world, politics, technology, sports, business"})
	}
	if in.Language != nil && !in.Language.Valid() {
		errs = append(errs, ValidationError{Field: "language", Message: "must be one of en, ar"})
	}
	if in.ReadMinutes != nil && *in.ReadMinutes <= 0 {
		errs = append(errs, ValidationError{Field: "readMinutes", Message: "must be a positive integer"})
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		if err := ValidateImageURL(*in.ImageURL); err != nil {
			errs = append(errs, ValidationError{Field: "imageUrl", Message: err.Error()})
		}
	}
	return errs.OrNil()
}
