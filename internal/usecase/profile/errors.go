// Package profile provides use cases for the user profile, its statistics
// and the career timeline, including the lazy repair of legacy timeline
// entries that predate identifier assignment.
package profile

import "errors"

// Sentinel errors for profile use case operations.
var (
	// ErrProfileNotFound indicates that no profile record exists.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEntryNotFound indicates that no timeline entry has the given ID.
	ErrEntryNotFound = errors.New("timeline entry not found")
)
