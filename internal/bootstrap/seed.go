package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"savora.app/api/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Post{},
		&model.Comment{},
		&model.PostLike{},
		&model.CommentLike{},
		&model.LogEntry{},
	)
}

// SeedAdminUser creates the development admin account if it does not
// exist yet. Only called when APP_ENV is development.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@savora.app").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        "admin@savora.app",
		Name:         "admin",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Email: admin@savora.app")
	log.Println("   Password: admin123")

	return nil
}
