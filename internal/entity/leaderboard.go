package entity

import "time"

// LeaderboardEntry is an immutable record of one completed score submission.
// Rank is positional and recomputed on every read.
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Rank     int       `json:"rank"`
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar,omitempty"`
	Score    int       `json:"score"`
	Mode     GameMode  `json:"mode"`
	Date     time.Time `json:"date"`
}
