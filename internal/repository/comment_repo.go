package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"savora.app/api/internal/model"
	"savora.app/api/pkg/apperror"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Like(ctx context.Context, userID, commentID uuid.UUID) error
	Unlike(ctx context.Context, userID, commentID uuid.UUID) error
	IsLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
	LikedByCount(ctx context.Context, commentID uuid.UUID) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).
			Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Comment{}, "id = ?", id).Error
	})
}

// Like/Unlike mirror the post variants: conditional membership insert
// or delete plus counter move, together in one transaction.
func (r *commentRepository) Like(ctx context.Context, userID, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.CommentLike{UserID: userID, CommentID: commentID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.ErrConflict
		}

		return tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

func (r *commentRepository) Unlike(ctx context.Context, userID, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&model.CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes - 1")).Error
	})
}

func (r *commentRepository) IsLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) LikedByCount(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
