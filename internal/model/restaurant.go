package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationStatus classifies a restaurant submission. Every record is
// always in exactly one of the three states; approve and deny overwrite
// the current state unconditionally, so neither state is terminal.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusDenied   ModerationStatus = "denied"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	}
	return false
}

type Restaurant struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Location    string           `gorm:"size:255;not null" json:"location"`
	Category    string           `gorm:"size:100;not null" json:"category"`
	Status      ModerationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	SubmitterID uuid.UUID        `gorm:"type:uuid;not null" json:"submitter_id"`
	Submitter   User             `gorm:"foreignKey:SubmitterID;constraint:OnDelete:CASCADE" json:"submitter,omitempty"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}
