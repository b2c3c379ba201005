package entity

import "encoding/json"

// Profile is the single user profile record backing the portfolio pages.
// The JSONB-backed collections are carried as raw JSON except for the
// timeline, which the application repairs and mutates entry by entry.
type Profile struct {
	ID          int64
	Name        string
	Title       string
	Bio         string
	Avatar      string
	Skills      json.RawMessage
	Timeline    []TimelineEntry
	Projects    json.RawMessage
	SocialLinks json.RawMessage
	Stats       json.RawMessage
}

// StatRow is one row of the profile statistics table.
type StatRow struct {
	Icon   string `json:"icon"`
	Number string `json:"number"`
	Label  string `json:"label"`
}

// Category is an article category with a stable string key.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
