package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"savora.app/api/internal/bootstrap"
	"savora.app/api/internal/model"
)

// newTestDB opens an isolated in-memory sqlite database, named after
// the test so parallel tests never share state, and runs the full
// migration against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role model.Role) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:          name + "@example.com",
		Name:           name,
		PasswordHash:   string(hash),
		Role:           role,
		ProfilePicture: model.DefaultProfilePicture,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

// fakeImageStorage satisfies storage.ImageStorage without touching disk
// or the network.
type fakeImageStorage struct {
	uploads int
	deleted []string
}

func (f *fakeImageStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	f.uploads++
	return "https://img.test/" + folder + "/" + fileName, nil
}

func (f *fakeImageStorage) DeleteImage(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}
