package usecase

import (
	"context"
	"fmt"
	"time"

	"snake-arena/internal/entity"
	"snake-arena/internal/repo/cache"
	"snake-arena/internal/repo/persistent"
	"snake-arena/pkg/logger"
	"snake-arena/pkg/queue"
)

type LeaderboardUseCase interface {
	List(mode string) ([]*entity.LeaderboardEntry, error)
	Submit(userEmail string, score int, mode string) (*entity.LeaderboardEntry, error)
}

type leaderboardUseCase struct {
	leaderboardRepo persistent.LeaderboardRepository
	userRepo        persistent.UserRepository
	rankCache       *cache.RankCache
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewLeaderboardUseCase(
	leaderboardRepo persistent.LeaderboardRepository,
	userRepo persistent.UserRepository,
	rankCache *cache.RankCache,
	queueClient *queue.Client,
	logger *logger.Logger,
) LeaderboardUseCase {
	return &leaderboardUseCase{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		rankCache:       rankCache,
		queueClient:     queueClient,
		logger:          logger,
	}
}

// List returns the leaderboard sorted by score descending with ranks
// assigned positionally, 1..N contiguous. mode narrows to one game mode when
// non-empty.
func (uc *leaderboardUseCase) List(mode string) ([]*entity.LeaderboardEntry, error) {
	var modeFilter *entity.GameMode
	if mode != "" {
		parsed, err := entity.ParseGameMode(mode)
		if err != nil {
			return nil, err
		}
		modeFilter = &parsed
	}

	entries, err := uc.leaderboardRepo.List(modeFilter)
	if err != nil {
		uc.logger.Error("Failed to list leaderboard entries: %v", err)
		return nil, fmt.Errorf("failed to load leaderboard")
	}

	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries, nil
}

func (uc *leaderboardUseCase) Submit(userEmail string, score int, mode string) (*entity.LeaderboardEntry, error) {
	parsedMode, err := entity.ParseGameMode(mode)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	entry := &entity.LeaderboardEntry{
		UserID:   user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		Score:    score,
		Mode:     parsedMode,
		Date:     time.Now().UTC(),
	}

	updatedUser, err := uc.leaderboardRepo.Submit(entry)
	if err != nil {
		uc.logger.Error("Failed to submit score for %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to submit score")
	}

	if uc.rankCache != nil {
		if err := uc.rankCache.RecordHighScore(context.Background(), user.ID, updatedUser.HighScore); err != nil {
			uc.logger.Warn("Failed to mirror high score to cache: %v", err)
		}
	}

	if uc.queueClient != nil {
		event := queue.ScoreEvent{
			EntryID:     entry.ID,
			UserID:      user.ID,
			Username:    user.Username,
			Score:       score,
			Mode:        string(parsedMode),
			SubmittedAt: entry.Date,
		}
		go func() {
			if err := uc.queueClient.PublishScoreEvent(event); err != nil {
				uc.logger.Error("Failed to publish score event: %v", err)
			}
		}()
	}

	return entry, nil
}
