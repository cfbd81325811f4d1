package entity

import (
	"errors"
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for image URLs.
const maxURLLength = 2048

// ValidateImageURL validates the format of an article image URL.
// Relative paths ("/images/...") are accepted because seeded articles
// reference site-local assets; absolute URLs must use http or https.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("cannot be empty")
	}
	if len(rawURL) > maxURLLength {
		return fmt.Errorf("must not exceed %d characters", maxURLLength)
	}

	if rawURL[0] == '/' {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	if parsed.Host == "" {
		return errors.New("must have a valid host")
	}
	return nil
}
