package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/api/articles/\d+$`), template: "/api/articles/:id"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+/comments$`), template: "/api/articles/:id/comments"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+/like$`), template: "/api/articles/:id/like"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+/bookmark$`), template: "/api/articles/:id/bookmark"},

	{pattern: regexp.MustCompile(`^/api/authors/[^/]+/follow$`), template: "/api/authors/:authorId/follow"},

	{pattern: regexp.MustCompile(`^/api/user/timeline/[^/]+$`), template: "/api/user/timeline/:entryId"},
}

// NormalizePath converts paths carrying identifiers to template form, e.g.
// /api/articles/123 -> /api/articles/:id, so that metric labels stay bounded.
// Static paths pass through unchanged.
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
