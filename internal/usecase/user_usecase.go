package usecase

import (
	"context"
	"fmt"
	"io"

	"snake-arena/internal/entity"
	"snake-arena/internal/repo/cache"
	"snake-arena/internal/repo/persistent"
	"snake-arena/pkg/logger"
	"snake-arena/pkg/s3"
)

type UserUseCase interface {
	GetStats(userID string) (*entity.UserStats, error)
	UpdateProfile(userEmail string, username, avatar *string) (*entity.User, error)
	UploadAvatar(userEmail string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
}

type userUseCase struct {
	userRepo  persistent.UserRepository
	rankCache *cache.RankCache
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	rankCache *cache.RankCache,
	s3Client *s3.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		rankCache: rankCache,
		s3Client:  s3Client,
		logger:    logger,
	}
}

// GetStats computes the user's global rank: one plus the number of users
// with a strictly greater high score. The Redis sorted set answers when it
// can; otherwise the count comes from the database.
func (uc *userUseCase) GetStats(userID string) (*entity.UserStats, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	rank := 0
	if uc.rankCache != nil {
		if cached, ok := uc.rankCache.Rank(context.Background(), user.HighScore); ok {
			rank = cached
		}
	}
	if rank == 0 {
		higher, err := uc.userRepo.CountWithHigherScore(user.HighScore)
		if err != nil {
			uc.logger.Error("Failed to count higher scores: %v", err)
			return nil, fmt.Errorf("failed to compute stats")
		}
		rank = int(higher) + 1
	}

	return &entity.UserStats{
		HighScore:   user.HighScore,
		GamesPlayed: user.GamesPlayed,
		Rank:        rank,
	}, nil
}

func (uc *userUseCase) UpdateProfile(userEmail string, username, avatar *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if username != nil && *username != user.Username {
		if _, err := uc.userRepo.GetByUsername(*username); err == nil {
			return nil, fmt.Errorf("username already taken")
		}
		user.Username = *username
	}
	if avatar != nil {
		user.Avatar = *avatar
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update profile for %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) UploadAvatar(userEmail string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user.Avatar = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to store avatar for %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}
