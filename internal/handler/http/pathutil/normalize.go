package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to templates. Evaluated in order, most
// specific first. Pre-compiled so normalization stays cheap on the hot path.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/api/articles/[0-9a-fA-F-]{36}/views$`), "/api/articles/:id/views"},
	{regexp.MustCompile(`^/api/articles/[0-9a-fA-F-]{36}$`), "/api/articles/:id"},
}

// NormalizePath collapses dynamic URL paths to templates so metrics labels
// stay bounded: every article ID maps to the same label instead of creating
// a new time series per article. Static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
