package main

import (
	"fmt"
	"time"

	"snake-arena/internal/model"
	"snake-arena/pkg/config"
	"snake-arena/pkg/database"
	"snake-arena/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	now := time.Now().UTC()

	// Passwords are stored plaintext on purpose: these rows imitate accounts
	// imported from the old backend, which never hashed. The first successful
	// login rehashes them with bcrypt.
	demoUsers := []struct {
		username    string
		email       string
		password    string
		highScore   int
		gamesPlayed int
		createdAt   time.Time
	}{
		{"SnakeMaster", "snakemaster@game.com", "password123", 2500, 150, now.AddDate(0, 0, -30)},
		{"NeonViper", "neonviper@game.com", "password123", 1800, 85, now.AddDate(0, 0, -20)},
		{"PixelPython", "pixelpython@game.com", "password123", 1200, 45, now.AddDate(0, 0, -10)},
	}

	userIDs := make(map[string]string, len(demoUsers))

	for _, userData := range demoUsers {
		user := &model.UserModel{
			Username:    userData.username,
			Email:       userData.email,
			Password:    userData.password,
			HighScore:   userData.highScore,
			GamesPlayed: userData.gamesPlayed,
			CreatedAt:   userData.createdAt,
		}

		var existing model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs[user.Username] = existing.ID
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs[user.Username] = user.ID
	}

	// Dates are staggered so the ordering (score desc, then oldest first on
	// ties) reproduces the expected ranking 2500, 1800, 1500, 1200.
	demoEntries := []struct {
		username string
		score    int
		mode     string
		date     time.Time
	}{
		{"SnakeMaster", 2500, "pass-through", now.AddDate(0, 0, -4)},
		{"NeonViper", 1800, "walls", now.AddDate(0, 0, -3)},
		{"SnakeMaster", 1500, "walls", now.AddDate(0, 0, -2)},
		{"PixelPython", 1200, "pass-through", now.AddDate(0, 0, -1)},
	}

	for _, entryData := range demoEntries {
		userID, ok := userIDs[entryData.username]
		if !ok {
			log.Error("No user ID for %s, skipping entry", entryData.username)
			continue
		}

		var existing model.LeaderboardEntryModel
		result := db.Where("user_id = ? AND score = ? AND mode = ?", userID, entryData.score, entryData.mode).First(&existing)
		if result.Error == nil {
			log.Info("Entry %d/%s for %s already exists, skipping", entryData.score, entryData.mode, entryData.username)
			continue
		}

		entry := &model.LeaderboardEntryModel{
			UserID:   userID,
			Username: entryData.username,
			Score:    entryData.score,
			Mode:     entryData.mode,
			Date:     entryData.date,
		}

		if err := db.Create(entry).Error; err != nil {
			log.Error("Failed to create leaderboard entry: %v", err)
			continue
		}

		log.Info("Created leaderboard entry: %s %d (%s)", entryData.username, entryData.score, entryData.mode)
	}

	return nil
}
