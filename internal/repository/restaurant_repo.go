package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"savora.app/api/internal/model"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindAll(ctx context.Context) ([]*model.Restaurant, error)
	FindByStatus(ctx context.Context, status model.ModerationStatus) ([]*model.Restaurant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurant).Error; err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *restaurantRepository) FindByStatus(ctx context.Context, status model.ModerationStatus) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *restaurantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ModerationStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Restaurant{}, "id = ?", id).Error
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
