package repository

import "context"

// EdgeRepository is the persistence contract of the toggle-count engine: an
// existence-only (subject, object) pair with a derived count. One
// implementation per edge table (likes, bookmarks, follows).
type EdgeRepository interface {
	// Exists reports whether the (subject, object) edge is present.
	Exists(ctx context.Context, objectID, subjectID string) (bool, error)
	// Count returns the number of edges referencing the object, computed
	// with COUNT(*) over the edge table. Never cached.
	Count(ctx context.Context, objectID string) (int64, error)
	// Insert adds the edge if absent. Inserting an existing edge is a
	// no-op, not an error, so concurrent adds for the same pair converge.
	Insert(ctx context.Context, objectID, subjectID string) error
	// Delete removes the edge if present. Deleting an absent edge is a
	// no-op.
	Delete(ctx context.Context, objectID, subjectID string) error
}
