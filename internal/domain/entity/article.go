// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article,
// Comment and TimelineEntry, along with their validation rules and
// domain-specific errors.
package entity

// Article represents a blog article in the system.
// CreatedAt is stored as epoch milliseconds and determines list ordering
// (descending). Views is a display string such as "2.5k" and is never
// interpreted numerically by the server.
type Article struct {
	ID         int64
	Title      string
	Excerpt    string
	Content    string
	Image      string
	Author     string
	Date       string
	Views      string
	ReadTime   string
	Category   string
	CategoryID string
	Tags       []string
	Featured   bool
	Popular    bool
	IsDraft    bool
	CreatedAt  int64
}
