package service

import (
	"context"
	"strings"

	"meublog/internal/models"
	"meublog/internal/repository"
)

const (
	minCommentLen = 3
	maxCommentLen = 1000
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	UserID  uint
	Slug    string
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		isAdmin:     isAdmin,
	}
}

func validateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < minCommentLen {
		return models.NewValidationError("Comment must be at least 3 characters")
	}
	if len(trimmed) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 1000 characters)")
	}
	return nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetBySlug(ctx, in.Slug, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(in.Content),
		PostID:  post.ID,
		UserID:  &in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) GetPostComments(ctx context.Context, slug string, limit, offset int) ([]*models.Comment, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, post.ID, limit, offset)
}

// UpdateComment lets only the author edit; admins moderate by deleting, not
// by rewriting other people's words.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID == nil || *comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}

	comment.Content = strings.TrimSpace(in.Content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment for its author or an admin.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}

	owns := comment.UserID != nil && *comment.UserID == in.UserID
	if !owns {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
