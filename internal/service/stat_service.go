package service

import (
	"context"

	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
)

// StatService backs the admin dashboard: aggregate counts plus the raw
// audit log.
type StatService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	Logs(ctx context.Context) ([]*model.LogEntry, error)
}

type statService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	postRepo       repository.PostRepository
	logRepo        repository.LogRepository
}

func NewStatService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	postRepo repository.PostRepository,
	logRepo repository.LogRepository,
) StatService {
	return &statService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		postRepo:       postRepo,
		logRepo:        logRepo,
	}
}

func (s *statService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	usersCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	restaurantsCount, err := s.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	postsCount, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		UsersCount:       usersCount,
		RestaurantsCount: restaurantsCount,
		PostsCount:       postsCount,
	}, nil
}

func (s *statService) Logs(ctx context.Context) ([]*model.LogEntry, error) {
	return s.logRepo.FindAll(ctx)
}
