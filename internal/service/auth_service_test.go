package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
	"savora.app/api/pkg/apperror"
	"savora.app/api/pkg/token"
)

func newAuthService(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	codec := token.NewCodec("test-secret", time.Hour)

	return NewAuthService(repo, codec, nil), repo
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	err := svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.DefaultProfilePicture, user.ProfilePicture)
	assert.NotEqual(t, "password123", user.PasswordHash)

	res, err := svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, string(model.RoleUser), res.Role)
	assert.Greater(t, res.ExpiresIn, time.Now().Unix())
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	}))

	_, err := svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	// Unknown email fails identically so the response does not leak
	// which accounts exist.
	_, err = svc.Login(ctx, dto.LoginInput{Email: "nobody@x.com", Password: "password123"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	}))

	err := svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "Other",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = svc.Register(ctx, dto.RegisterInput{
		Email:    "other@x.com",
		Password: "password123",
		Name:     "A",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	}))
	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, dto.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, dto.ChangePasswordInput{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	}))

	_, err = svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "password123"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestAuthService_UpdateAccountInfo(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	}))
	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "b@x.com",
		Password: "password123",
		Name:     "B",
	}))

	userA, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	// Unchanged values are a silent no-op.
	require.NoError(t, svc.UpdateAccountInfo(ctx, userA.ID, dto.UpdateAccountInput{
		Name:  "A",
		Email: "a@x.com",
	}))

	err = svc.UpdateAccountInfo(ctx, userA.ID, dto.UpdateAccountInput{
		Name:  "B",
		Email: "a@x.com",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = svc.UpdateAccountInfo(ctx, userA.ID, dto.UpdateAccountInput{
		Name:  "A",
		Email: "b@x.com",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	require.NoError(t, svc.UpdateAccountInfo(ctx, userA.ID, dto.UpdateAccountInput{
		Name:  "A2",
		Email: "a2@x.com",
	}))

	updated, err := repo.FindByID(ctx, userA.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)
	assert.Equal(t, "a2@x.com", updated.Email)
}

func TestAuthService_AccountInfo(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "A",
	}))
	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	info, err := svc.AccountInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", info.Name)
	assert.Equal(t, "a@x.com", info.Email)
	assert.Equal(t, string(model.RoleUser), info.Role)
}

func TestAuthService_LogoutWithoutRevocationStore(t *testing.T) {
	svc, _ := newAuthService(t)

	// Without Redis logout is the observed client-side discard: the
	// call succeeds and nothing is persisted.
	err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour))
	assert.NoError(t, err)
}
