package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"meublog/internal/models"
	"meublog/internal/repository"
	"meublog/internal/validation"
)

const (
	maxTitleLen   = 200
	maxContentLen = 50000
	// maxSlugAttempts bounds the -2, -3, ... suffix search for colliding titles.
	maxSlugAttempts = 100
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	isAdmin      func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	UserID     uint
	Title      string
	Content    string
	ImagePath  string
	CategoryID *uint
}

type ListPostsInput struct {
	Categoria     string
	Limit         int
	Offset        int
	CurrentUserID uint
}

type UpdatePostInput struct {
	UserID     uint
	Slug       string
	Title      string
	Content    string
	ImagePath  string
	CategoryID *uint
}

type DeletePostInput struct {
	UserID uint
	Slug   string
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		isAdmin:      isAdmin,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      title,
		Slug:       slug,
		Content:    in.Content,
		ImagePath:  in.ImagePath,
		UserID:     in.UserID,
		CategoryID: in.CategoryID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetBySlug(ctx, post.Slug, in.UserID)
}

// uniqueSlug derives the URL slug from the title, appending -2, -3, ... when
// an earlier post already claimed it.
func (s *PostService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := validation.Slugify(title)
	if base == "" {
		return "", models.NewValidationError("Title must contain letters or digits")
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := s.postRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", models.NewValidationError("Too many posts with this title")
}

func (s *PostService) GetPost(ctx context.Context, slug string, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetBySlug(ctx, slug, currentUserID)
}

// ListPosts returns the post feed, optionally filtered by category. The
// categoria filter accepts a category name or a numeric ID; a value that is
// neither falls back to the unfiltered feed.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var categoryID *uint
	if in.Categoria != "" {
		category, err := s.categoryRepo.GetByName(ctx, in.Categoria)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categoryID = &category.ID
		} else if id, parseErr := strconv.ParseUint(in.Categoria, 10, 32); parseErr == nil {
			// A numeric value filters by that id even when no such category
			// exists, so a stale link yields an empty feed, not an error.
			cid := uint(id)
			categoryID = &cid
		}
	}

	return s.postRepo.List(ctx, categoryID, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// UpdatePost lets the author or an admin edit title, content, image and
// category. The slug is never regenerated so existing links keep working.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, in.Slug, in.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizePostChange(ctx, post, in.UserID, "update"); err != nil {
		return nil, err
	}

	if in.Title != "" {
		title := strings.TrimSpace(in.Title)
		if len(title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		post.Title = title
	}
	if in.Content != "" {
		if len(in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = in.Content
	}
	if in.ImagePath != "" {
		post.ImagePath = in.ImagePath
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetBySlug(ctx, post.Slug, in.UserID)
}

// DeletePost removes a post for its author or an admin. Comments and
// reactions on the post go with it.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetBySlug(ctx, in.Slug, in.UserID)
	if err != nil {
		return err
	}

	if err := s.authorizePostChange(ctx, post, in.UserID, "delete"); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, post.ID)
}

// authorizePostChange allows the author, and falls back to the admin check
// for everyone else.
func (s *PostService) authorizePostChange(ctx context.Context, post *models.Post, userID uint, verb string) error {
	if post.UserID == userID {
		return nil
	}
	if s.isAdmin != nil {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return err
		}
		if admin {
			return nil
		}
	}
	return models.NewUnauthorizedError("You can only " + verb + " your own posts")
}
