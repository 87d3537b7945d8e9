package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
	"savora.app/api/pkg/apperror"
	"savora.app/api/pkg/token"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) error
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input dto.ChangePasswordInput) error
	AccountInfo(ctx context.Context, userID uuid.UUID) (*dto.AccountInfoResponse, error)
	UpdateAccountInfo(ctx context.Context, userID uuid.UUID, input dto.UpdateAccountInput) error
}

type authService struct {
	repo  repository.UserRepository
	codec *token.Codec
	rdb   *redis.Client
}

func NewAuthService(repo repository.UserRepository, codec *token.Codec, rdb *redis.Client) AuthService {
	return &authService{
		repo:  repo,
		codec: codec,
		rdb:   rdb,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) error {
	if err := s.ensureUserUnique(ctx, input.Email, input.Name); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          input.Email,
		Name:           input.Name,
		PasswordHash:   string(hashedPassword),
		Role:           model.RoleUser,
		ProfilePicture: model.DefaultProfilePicture,
	}

	return s.repo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	signed, expiresAt, err := s.codec.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:   "User logged in successfully",
		Token:     signed,
		TokenType: "Bearer",
		ExpiresIn: expiresAt.Unix(),
		Role:      string(user.Role),
	}, nil
}

// Logout revokes the presented token for its remaining lifetime when a
// revocation store is configured; otherwise the token simply remains a
// client-side discard.
func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return RevokeToken(ctx, s.rdb, tokenID, time.Until(expiresAt))
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input dto.ChangePasswordInput) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return fmt.Errorf("invalid current password: %w", apperror.ErrBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashedPassword)
	return s.repo.Update(ctx, user)
}

func (s *authService) AccountInfo(ctx context.Context, userID uuid.UUID) (*dto.AccountInfoResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return &dto.AccountInfoResponse{
		Name:      user.Name,
		Role:      string(user.Role),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *authService) UpdateAccountInfo(ctx context.Context, userID uuid.UUID, input dto.UpdateAccountInput) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if input.Name == user.Name && input.Email == user.Email {
		return nil
	}

	if input.Name != user.Name {
		if _, err := s.repo.FindByName(ctx, input.Name); err == nil {
			return fmt.Errorf("name already in use: %w", apperror.ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if input.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return fmt.Errorf("email already in use: %w", apperror.ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	return s.repo.Update(ctx, user)
}

func (s *authService) ensureUserUnique(ctx context.Context, email, name string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("email already in use: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return fmt.Errorf("name already in use: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}
