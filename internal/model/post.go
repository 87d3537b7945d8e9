package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL    string    `gorm:"type:text;not null" json:"image"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Comments    []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	PostID    uuid.UUID `gorm:"type:uuid;not null" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

// PostLike is one membership row of a post's liked-by set. The
// composite primary key makes a duplicate like a constraint violation,
// which keeps the likes counter and the set cardinality in lockstep.
type PostLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"post_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type CommentLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"comment_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
