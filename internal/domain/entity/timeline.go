package entity

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// TimelineEntry is one step of the profile's career timeline. Entries are
// stored as an ordered JSON sequence on the profile record; legacy entries may
// lack an ID until RepairTimeline assigns one.
type TimelineEntry struct {
	ID          string `json:"id,omitempty"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

const entryIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTimelineEntryID generates an identifier for a timeline entry: a
// time-based prefix followed by a random suffix. Uniqueness is best-effort,
// not cryptographically guaranteed.
func NewTimelineEntryID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = entryIDAlphabet[rand.IntN(len(entryIDAlphabet))]
	}
	return prefix + "-" + string(suffix)
}

// RepairTimeline assigns identifiers to entries that lack one and reports
// whether any assignment happened. Entries that already carry an ID are
// returned unchanged, so applying the repair twice is a no-op the second
// time. Callers must persist the repaired sequence when changed is true.
func RepairTimeline(entries []TimelineEntry) (repaired []TimelineEntry, changed bool) {
	repaired = make([]TimelineEntry, len(entries))
	copy(repaired, entries)
	for i := range repaired {
		if repaired[i].ID == "" {
			repaired[i].ID = NewTimelineEntryID()
			changed = true
		}
	}
	return repaired, changed
}
