package service

import (
	"context"

	"meublog/internal/cache"
	"meublog/internal/models"
	"meublog/internal/repository"
)

// UserService handles admin-facing user management and the dashboard.
type UserService struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
	categoryRepo repository.CategoryRepository
}

// DashboardCounts aggregates the totals shown on the admin panel.
type DashboardCounts struct {
	Users      int64 `json:"usuarios"`
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comentarios"`
	Reactions  int64 `json:"reacoes"`
	Categories int64 `json:"categorias"`
}

func NewUserService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	categoryRepo repository.CategoryRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// SetUserActive flips the activation flag on a user's profile. Admins cannot
// deactivate themselves, and legacy users without a profile cannot be
// activated or deactivated until one is backfilled.
func (s *UserService) SetUserActive(ctx context.Context, adminID, targetID uint, active bool) error {
	if adminID == targetID && !active {
		return models.NewValidationError("You cannot deactivate your own account")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, targetID)
	if err != nil {
		return err
	}
	if profile == nil {
		return models.NewValidationError("User has no profile")
	}

	return s.profileRepo.SetActive(ctx, targetID, active)
}

// Dashboard returns the admin panel counters, cached briefly since they are
// recomputed on every panel load.
func (s *UserService) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	var counts DashboardCounts
	err := cache.Aside(ctx, cache.DashboardKey, &counts, cache.DashboardTTL, func() error {
		var err error
		if counts.Users, err = s.userRepo.Count(ctx); err != nil {
			return err
		}
		if counts.Posts, err = s.postRepo.Count(ctx); err != nil {
			return err
		}
		if counts.Comments, err = s.commentRepo.Count(ctx); err != nil {
			return err
		}
		if counts.Reactions, err = s.reactionRepo.Count(ctx); err != nil {
			return err
		}
		counts.Categories, err = s.categoryRepo.Count(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
