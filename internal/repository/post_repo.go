package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"savora.app/api/internal/model"
	"savora.app/api/pkg/apperror"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	Like(ctx context.Context, userID, postID uuid.UUID) error
	Unlike(ctx context.Context, userID, postID uuid.UUID) error
	IsLiked(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	LikedByCount(ctx context.Context, postID uuid.UUID) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

// Delete removes the post together with its comments and every
// liked-by row, in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uuid.UUID
		if err := tx.Model(&model.Comment{}).
			Where("post_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).
				Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", id).
				Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("post_id = ?", id).
			Delete(&model.PostLike{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Like inserts the membership row and bumps the counter in one
// transaction. The composite primary key turns a duplicate like into a
// no-op insert, which surfaces as ErrConflict before the counter moves,
// so two racing likes from the same user cannot over-increment.
func (r *postRepository) Like(ctx context.Context, userID, postID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.PostLike{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.ErrConflict
		}

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

// Unlike is a no-op when the user never liked the post; the counter is
// only decremented when a membership row was actually removed, so it
// can never go negative.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes - 1")).Error
	})
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) LikedByCount(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
