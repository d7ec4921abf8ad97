package entity

import (
	"fmt"
	"time"
)

type GameMode string

const (
	ModePassThrough GameMode = "pass-through"
	ModeWalls       GameMode = "walls"
)

// ErrUnknownGameMode is returned when a mode string does not decode to a
// known game mode. Stored strings are never trusted.
var ErrUnknownGameMode = fmt.Errorf("unknown game mode")

// ParseGameMode validates a mode string, failing closed on anything
// unrecognized.
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModePassThrough, ModeWalls:
		return GameMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGameMode, s)
}

type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusPlaying  GameStatus = "playing"
	StatusPaused   GameStatus = "paused"
	StatusGameOver GameStatus = "game-over"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LiveGame is an in-progress match visible to spectators. Live games exist
// only in process memory and vanish on restart.
type LiveGame struct {
	ID           string     `json:"id"`
	PlayerID     string     `json:"playerId"`
	PlayerName   string     `json:"playerName"`
	PlayerAvatar string     `json:"playerAvatar,omitempty"`
	Score        int        `json:"score"`
	Mode         GameMode   `json:"mode"`
	Snake        []Position `json:"snake"`
	Food         Position   `json:"food"`
	Status       GameStatus `json:"status"`
	Viewers      int        `json:"viewers"`
	StartedAt    time.Time  `json:"startedAt"`
}
