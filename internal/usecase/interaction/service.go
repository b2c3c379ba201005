package interaction

import (
	"context"
	"fmt"

	"blog-api/internal/repository"
)

// State is the outcome of a toggle operation or status read. Count is the
// total number of edges referencing the object, recomputed from the edge set
// on every call rather than read from a cached field, so concurrent toggles
// from different subjects converge to the true cardinality.
type State struct {
	IsMember bool
	Count    int64
}

// Service is the toggle-count engine for one edge table.
type Service struct {
	Repo repository.EdgeRepository
}

// Status reports whether the subject holds an edge to the object, along with
// the object's edge count. An empty subject is an anonymous inspection and
// always reads as "not a member"; the count is still real.
func (s *Service) Status(ctx context.Context, objectID, subjectID string) (State, error) {
	count, err := s.Repo.Count(ctx, objectID)
	if err != nil {
		return State{}, fmt.Errorf("count edges: %w", err)
	}

	isMember := false
	if subjectID != "" {
		isMember, err = s.Repo.Exists(ctx, objectID, subjectID)
		if err != nil {
			return State{}, fmt.Errorf("check edge: %w", err)
		}
	}
	return State{IsMember: isMember, Count: count}, nil
}

// Add inserts the edge if absent; duplicate calls are no-ops. The returned
// count is recomputed after the mutation.
// Returns ErrAuthenticationRequired when no subject identity was resolved.
func (s *Service) Add(ctx context.Context, objectID, subjectID string) (State, error) {
	if subjectID == "" {
		return State{}, ErrAuthenticationRequired
	}

	if err := s.Repo.Insert(ctx, objectID, subjectID); err != nil {
		return State{}, fmt.Errorf("add edge: %w", err)
	}
	count, err := s.Repo.Count(ctx, objectID)
	if err != nil {
		return State{}, fmt.Errorf("count edges: %w", err)
	}
	return State{IsMember: true, Count: count}, nil
}

// Remove deletes the edge if present; removing an absent edge is a no-op.
// The returned count is recomputed after the mutation.
// Returns ErrAuthenticationRequired when no subject identity was resolved.
func (s *Service) Remove(ctx context.Context, objectID, subjectID string) (State, error) {
	if subjectID == "" {
		return State{}, ErrAuthenticationRequired
	}

	if err := s.Repo.Delete(ctx, objectID, subjectID); err != nil {
		return State{}, fmt.Errorf("remove edge: %w", err)
	}
	count, err := s.Repo.Count(ctx, objectID)
	if err != nil {
		return State{}, fmt.Errorf("count edges: %w", err)
	}
	return State{IsMember: false, Count: count}, nil
}
