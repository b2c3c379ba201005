// Package interaction implements the generic toggle-count engine shared by
// likes, bookmarks and author follows: idempotent set membership of a
// (subject, object) pair with a live, always-derived count.
package interaction

import "errors"

// ErrAuthenticationRequired indicates a mutating toggle was attempted
// without a resolved subject identity.
var ErrAuthenticationRequired = errors.New("authentication required")
