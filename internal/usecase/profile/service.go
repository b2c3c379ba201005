package profile

import (
	"context"
	"fmt"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

// EntryInput carries a new timeline entry.
type EntryInput struct {
	Year        string
	Title       string
	Company     string
	Description string
}

// EntryUpdate is a merge-patch update of one timeline entry; nil fields keep
// their prior value.
type EntryUpdate struct {
	Year        *string
	Title       *string
	Company     *string
	Description *string
}

type Service struct {
	Repo repository.ProfileRepository
}

// loadRepaired fetches the profile and applies the timeline repair before
// anything else sees the sequence. When the repair assigned identifiers, the
// repaired sequence is persisted immediately so the repair happens at most
// once; the subsequent read returns identical identifiers.
func (s *Service) loadRepaired(ctx context.Context) (*entity.Profile, error) {
	profile, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	repaired, changed := entity.RepairTimeline(profile.Timeline)
	if changed {
		if err := s.Repo.UpdateTimeline(ctx, profile.ID, repaired); err != nil {
			return nil, fmt.Errorf("persist repaired timeline: %w", err)
		}
	}
	profile.Timeline = repaired
	return profile, nil
}

// Profile returns the profile record with its timeline repaired.
func (s *Service) Profile(ctx context.Context) (*entity.Profile, error) {
	return s.loadRepaired(ctx)
}

// Stats returns the profile statistics rows.
func (s *Service) Stats(ctx context.Context) ([]entity.StatRow, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// Timeline returns the repaired timeline sequence.
func (s *Service) Timeline(ctx context.Context) ([]entity.TimelineEntry, error) {
	profile, err := s.loadRepaired(ctx)
	if err != nil {
		return nil, err
	}
	return profile.Timeline, nil
}

// AddEntry prepends a new entry to the timeline; creates are newest-first.
func (s *Service) AddEntry(ctx context.Context, in EntryInput) (*entity.TimelineEntry, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}

	profile, err := s.loadRepaired(ctx)
	if err != nil {
		return nil, err
	}

	entry := entity.TimelineEntry{
		ID:          entity.NewTimelineEntryID(),
		Year:        in.Year,
		Title:       in.Title,
		Company:     in.Company,
		Description: in.Description,
	}
	entries := append([]entity.TimelineEntry{entry}, profile.Timeline...)
	if err := s.Repo.UpdateTimeline(ctx, profile.ID, entries); err != nil {
		return nil, fmt.Errorf("add timeline entry: %w", err)
	}
	return &entry, nil
}

// UpdateEntry merge-patches the entry with the given ID.
// Returns ErrEntryNotFound if no entry carries that ID. The repair runs
// first, so a lookup never misses because of a legacy identifier gap.
func (s *Service) UpdateEntry(ctx context.Context, entryID string, in EntryUpdate) (*entity.TimelineEntry, error) {
	profile, err := s.loadRepaired(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfEntry(profile.Timeline, entryID)
	if idx < 0 {
		return nil, ErrEntryNotFound
	}

	entry := &profile.Timeline[idx]
	if in.Year != nil {
		entry.Year = *in.Year
	}
	if in.Title != nil {
		entry.Title = *in.Title
	}
	if in.Company != nil {
		entry.Company = *in.Company
	}
	if in.Description != nil {
		entry.Description = *in.Description
	}

	if err := s.Repo.UpdateTimeline(ctx, profile.ID, profile.Timeline); err != nil {
		return nil, fmt.Errorf("update timeline entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes the entry with the given ID.
// Returns ErrEntryNotFound if no entry carries that ID.
func (s *Service) DeleteEntry(ctx context.Context, entryID string) error {
	profile, err := s.loadRepaired(ctx)
	if err != nil {
		return err
	}

	idx := indexOfEntry(profile.Timeline, entryID)
	if idx < 0 {
		return ErrEntryNotFound
	}

	entries := append(profile.Timeline[:idx:idx], profile.Timeline[idx+1:]...)
	if err := s.Repo.UpdateTimeline(ctx, profile.ID, entries); err != nil {
		return fmt.Errorf("delete timeline entry: %w", err)
	}
	return nil
}

func indexOfEntry(entries []entity.TimelineEntry, entryID string) int {
	for i := range entries {
		if entries[i].ID == entryID {
			return i
		}
	}
	return -1
}
