package model

import "time"

// Audit log levels. DELETE marks destructive requests so they stand
// out in the admin log view; everything else is INFO.
const (
	LevelInfo   = "INFO"
	LevelDelete = "DELETE"
)

// LogEntry is one append-only audit record. Entries are only ever
// created; no exposed operation mutates or deletes them.
type LogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Level     string    `gorm:"size:20;not null" json:"level"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
