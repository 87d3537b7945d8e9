package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
	"savora.app/api/pkg/apperror"
)

// RestaurantService governs the moderation lifecycle of submitted
// restaurants. Approve and deny are unconditional overwrites, so a
// denied entry can be re-approved and vice versa.
type RestaurantService interface {
	Submit(ctx context.Context, submitterID uuid.UUID, input dto.AddRestaurantInput) (*model.Restaurant, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Deny(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]*model.Restaurant, error)
	GetByStatus(ctx context.Context, status model.ModerationStatus) ([]*model.Restaurant, error)
}

type restaurantService struct {
	repo      repository.RestaurantRepository
	sanitizer *bluemonday.Policy
}

func NewRestaurantService(repo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *restaurantService) Submit(ctx context.Context, submitterID uuid.UUID, input dto.AddRestaurantInput) (*model.Restaurant, error) {
	name := strings.TrimSpace(s.sanitizer.Sanitize(input.Name))
	location := strings.TrimSpace(s.sanitizer.Sanitize(input.Location))
	category := strings.TrimSpace(s.sanitizer.Sanitize(input.Category))

	// Sanitizing can strip an all-markup value down to nothing, so the
	// required check has to run again on the sanitized form.
	if name == "" || location == "" || category == "" {
		return nil, fmt.Errorf("name, location and category are required: %w", apperror.ErrInvalidInput)
	}

	restaurant := &model.Restaurant{
		Name:        name,
		Location:    location,
		Category:    category,
		Status:      model.StatusPending,
		SubmitterID: submitterID,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (s *restaurantService) Approve(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	return s.transition(ctx, id, model.StatusApproved)
}

func (s *restaurantService) Deny(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	return s.transition(ctx, id, model.StatusDenied)
}

func (s *restaurantService) transition(ctx context.Context, id uuid.UUID, status model.ModerationStatus) (*model.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	restaurant.Status = status
	return restaurant, nil
}

func (s *restaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("restaurant not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *restaurantService) GetAll(ctx context.Context) ([]*model.Restaurant, error) {
	return s.repo.FindAll(ctx)
}

func (s *restaurantService) GetByStatus(ctx context.Context, status model.ModerationStatus) ([]*model.Restaurant, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown moderation status %q: %w", status, apperror.ErrInvalidInput)
	}

	return s.repo.FindByStatus(ctx, status)
}
