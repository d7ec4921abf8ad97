package entity

import "time"

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Avatar      string    `json:"avatar,omitempty"`
	HighScore   int       `json:"highScore"`
	GamesPlayed int       `json:"gamesPlayed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// UserStats is the public stats view of a user. Rank is 1-based by
// descending high score and computed at read time.
type UserStats struct {
	HighScore   int `json:"highScore"`
	GamesPlayed int `json:"gamesPlayed"`
	Rank        int `json:"rank"`
}
