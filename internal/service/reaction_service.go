package service

import (
	"context"

	"meublog/internal/cache"
	"meublog/internal/middleware"
	"meublog/internal/models"
	"meublog/internal/repository"
)

// ReactionService implements the reaction toggle on posts.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

// ToggleResult is the outcome of a toggle, including the recomputed counts
// the client renders without another round trip.
type ToggleResult struct {
	Added  bool
	Kind   string
	Counts map[string]int64
	Total  int64
}

func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, postRepo: postRepo}
}

// Toggle applies the user's reaction of the given kind to the post identified
// by slug and returns the fresh per-kind counts. Counts are recomputed from
// the table after the toggle, so concurrent toggles converge on the stored
// state.
func (s *ReactionService) Toggle(ctx context.Context, userID uint, slug, kind string) (*ToggleResult, error) {
	if !models.ValidReactionKind(kind) {
		return nil, models.NewValidationError("Invalid reaction kind")
	}

	post, err := s.postRepo.GetBySlug(ctx, slug, userID)
	if err != nil {
		return nil, err
	}

	added, err := s.reactionRepo.Toggle(ctx, userID, post.ID, kind)
	if err != nil {
		return nil, err
	}

	action := "removed"
	if added {
		action = "added"
	}
	middleware.ReactionToggles.WithLabelValues(kind, action).Inc()

	cache.InvalidatePost(ctx, slug)
	cache.InvalidateDashboard(ctx)

	counts, total, err := s.reactionRepo.CountsByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{
		Added:  added,
		Kind:   kind,
		Counts: counts,
		Total:  total,
	}, nil
}

// cachedCounts is the Redis representation of a post's reaction tallies.
type cachedCounts struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// Counts returns the per-kind reaction counts for a post by slug. Reads go
// through the per-post cache; Toggle invalidates it on every mutation.
func (s *ReactionService) Counts(ctx context.Context, slug string) (map[string]int64, int64, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug, 0)
	if err != nil {
		return nil, 0, err
	}

	var tallies cachedCounts
	err = cache.Aside(ctx, cache.PostReactionsKey(slug), &tallies, cache.PostReactionsTTL, func() error {
		counts, total, err := s.reactionRepo.CountsByPost(ctx, post.ID)
		if err != nil {
			return err
		}
		tallies = cachedCounts{Counts: counts, Total: total}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return tallies.Counts, tallies.Total, nil
}
