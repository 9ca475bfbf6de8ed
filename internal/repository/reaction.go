package repository

import (
	"context"
	"errors"

	"meublog/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines the interface for reaction data operations
type ReactionRepository interface {
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error)
	Toggle(ctx context.Context, userID, postID uint, kind string) (added bool, err error)
	CountsByPost(ctx context.Context, postID uint) (map[string]int64, int64, error)
	Count(ctx context.Context) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

// Toggle applies the three-way transition for a user's reaction on a post:
// no reaction creates one, the same kind removes it, a different kind
// switches to the new kind. The whole transition runs in one transaction so
// the (user, post) uniqueness holds under concurrent toggles.
func (r *reactionRepository) Toggle(ctx context.Context, userID, postID uint, kind string) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reaction := models.Reaction{UserID: userID, PostID: postID, Kind: kind}
			if createErr := tx.Create(&reaction).Error; createErr != nil {
				// A concurrent toggle won the insert race; treat ours as a no-op add.
				if isUniqueConstraintError(createErr) {
					added = true
					return nil
				}
				return createErr
			}
			added = true
			return nil

		case err != nil:
			return err

		case existing.Kind == kind:
			added = false
			return tx.Delete(&existing).Error

		default:
			added = true
			return tx.Model(&existing).Update("kind", kind).Error
		}
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return added, nil
}

// CountsByPost returns the per-kind reaction counts and the total for a post.
// Kinds with no reactions are present in the map with a zero count.
func (r *reactionRepository) CountsByPost(ctx context.Context, postID uint) (map[string]int64, int64, error) {
	type kindCount struct {
		Kind  string
		Count int64
	}
	var rows []kindCount
	if err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("kind, COUNT(*) as count").
		Where("post_id = ?", postID).
		Group("kind").
		Find(&rows).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	counts := make(map[string]int64, len(models.ReactionKinds))
	for _, k := range models.ReactionKinds {
		counts[k] = 0
	}
	var total int64
	for _, row := range rows {
		counts[row.Kind] = row.Count
		total += row.Count
	}
	return counts, total, nil
}

func (r *reactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Reaction{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
