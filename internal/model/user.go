package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. It is stored as a plain
// string column; Valid gates anything read back from a token.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "restaurant_owner"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// DefaultProfilePicture is the sentinel stored for accounts that never
// uploaded a picture. It resolves into the upload area at read time.
const DefaultProfilePicture = "default.jpg"

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name           string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	Role           Role      `gorm:"size:30;not null;default:'user'" json:"role"`
	ProfilePicture string    `gorm:"size:255;not null;default:'default.jpg'" json:"profile_picture"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID, err = uuid.NewV7()
	}
	return
}
