package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
	"savora.app/api/pkg/apperror"
	"savora.app/api/pkg/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, description string, image *dto.ImageFile) (*model.Post, error)
	GetAllPosts(ctx context.Context) ([]*model.Post, error)
	DeletePost(ctx context.Context, actorID uuid.UUID, actorRole model.Role, postID uuid.UUID) error

	AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actorID uuid.UUID, actorRole model.Role, commentID uuid.UUID) error

	LikePost(ctx context.Context, userID, postID uuid.UUID) (*model.Post, error)
	UnlikePost(ctx context.Context, userID, postID uuid.UUID) (*model.Post, error)
	HasLikedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	LikeComment(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error)
	UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error)
	HasLikedComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)

	ProfilePictureURL(ctx context.Context, userID uuid.UUID) (string, error)
}

type postService struct {
	postRepo      repository.PostRepository
	commentRepo   repository.CommentRepository
	userRepo      repository.UserRepository
	imageStorage  storage.ImageStorage
	sanitizer     *bluemonday.Policy
	publicBaseURL string
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	imageStorage storage.ImageStorage,
	publicBaseURL string,
) PostService {
	return &postService{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		imageStorage:  imageStorage,
		sanitizer:     bluemonday.StrictPolicy(),
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (s *postService) CreatePost(ctx context.Context, userID uuid.UUID, description string, image *dto.ImageFile) (*model.Post, error) {
	// Sanitize before the required check so an all-markup description
	// cannot slip through as non-empty, and before the upload so a
	// rejected post never leaves an orphaned image behind.
	description = strings.TrimSpace(s.sanitizer.Sanitize(description))
	if description == "" || image == nil || image.Reader == nil {
		return nil, fmt.Errorf("description and image are required: %w", apperror.ErrInvalidInput)
	}

	imageURL, err := s.imageStorage.UploadImage(ctx, image.Reader, "posts", image.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store post image: %w", err)
	}

	post := &model.Post{
		ImageURL:    imageURL,
		Description: description,
		UserID:      userID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.FindAll(ctx)
}

func (s *postService) DeletePost(ctx context.Context, actorID uuid.UUID, actorRole model.Role, postID uuid.UUID) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID && actorRole != model.RoleAdmin {
		return fmt.Errorf("not allowed to delete this post: %w", apperror.ErrForbidden)
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	// The stored image is collateral; losing it must not fail the delete.
	if s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, post.ImageURL); err != nil {
			log.Printf("failed to delete image for post %s: %v", postID, err)
		}
	}

	return nil
}

func (s *postService) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(s.sanitizer.Sanitize(text))
	if text == "" {
		return nil, fmt.Errorf("comment text is required: %w", apperror.ErrInvalidInput)
	}

	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:   text,
		PostID: postID,
		UserID: userID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *postService) DeleteComment(ctx context.Context, actorID uuid.UUID, actorRole model.Role, commentID uuid.UUID) error {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != actorID && actorRole != model.RoleAdmin {
		return fmt.Errorf("not allowed to delete this comment: %w", apperror.ErrForbidden)
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *postService) LikePost(ctx context.Context, userID, postID uuid.UUID) (*model.Post, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, fmt.Errorf("post already liked: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	return s.findPost(ctx, postID)
}

func (s *postService) UnlikePost(ctx context.Context, userID, postID uuid.UUID) (*model.Post, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}

	return s.findPost(ctx, postID)
}

func (s *postService) HasLikedPost(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return false, err
	}

	return s.postRepo.IsLiked(ctx, userID, postID)
}

func (s *postService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error) {
	if _, err := s.findComment(ctx, commentID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Like(ctx, userID, commentID); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, fmt.Errorf("comment already liked: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	return s.findComment(ctx, commentID)
}

func (s *postService) UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error) {
	if _, err := s.findComment(ctx, commentID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Unlike(ctx, userID, commentID); err != nil {
		return nil, err
	}

	return s.findComment(ctx, commentID)
}

func (s *postService) HasLikedComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	if _, err := s.findComment(ctx, commentID); err != nil {
		return false, err
	}

	return s.commentRepo.IsLiked(ctx, userID, commentID)
}

// ProfilePictureURL resolves the stored reference into a URL the
// frontend can render: absolute URLs pass through, the default
// sentinel and bare file names resolve into the upload area.
func (s *postService) ProfilePictureURL(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return "", err
	}

	pic := user.ProfilePicture
	if strings.HasPrefix(pic, "http://") || strings.HasPrefix(pic, "https://") {
		return pic, nil
	}

	return s.publicBaseURL + "/uploads/" + pic, nil
}

func (s *postService) findPost(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) findComment(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return comment, nil
}
