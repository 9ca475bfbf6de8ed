package repository

import (
	"context"
	"errors"

	"meublog/internal/cache"
	"meublog/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string, currentUserID uint) (*models.Post, error)
	List(ctx context.Context, categoryID *uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("A post with this slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateDashboard(ctx)
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string, currentUserID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(slug)

	var err error
	if currentUserID == 0 {
		// Anonymous reads share one cache entry; per-user reaction state
		// makes authenticated reads uncacheable.
		err = cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
			return r.fetchBySlug(ctx, slug, 0, &post)
		})
	} else {
		err = r.fetchBySlug(ctx, slug, currentUserID, &post)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", slug)
		}
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) fetchBySlug(ctx context.Context, slug string, currentUserID uint, dest *models.Post) error {
	return r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Category").
		Where("posts.slug = ?", slug).
		First(dest).Error
}

func (r *postRepository) List(ctx context.Context, categoryID *uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	query := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Category")
	if categoryID != nil {
		query = query.Where("posts.category_id = ?", *categoryID)
	}
	err := query.
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), userID).
		Preload("Category").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// applyPostDetails adds subqueries to fetch counts and the viewer's reaction in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id) as reactions_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", COALESCE((SELECT kind FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ?), '') as my_reaction",
			currentUserID)
	}

	return db.Select(selectQuery + ", '' as my_reaction")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("A post with this slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.Slug)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	var post models.Post
	if err := r.db.WithContext(ctx).Select("id", "slug").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return models.NewInternalError(err)
	}
	// Hard delete; comments and reactions go with the post via FK cascade.
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.Slug)
	cache.InvalidateDashboard(ctx)
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
