package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardEntryModel rows are append-only; nothing updates them after
// creation. There is no rank column: rank is derived when reading.
type LeaderboardEntryModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	Username string `gorm:"not null" json:"username"`
	Avatar   string `json:"avatar"`
	Score    int    `gorm:"not null" json:"score"`
	Mode     string `gorm:"type:varchar(20);not null" json:"mode"`
	Date     time.Time `json:"date"`
}

func (LeaderboardEntryModel) TableName() string {
	return "leaderboard_entries"
}

func (m *LeaderboardEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	return nil
}
