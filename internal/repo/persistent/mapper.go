package persistent

import (
	"snake-arena/internal/entity"
	"snake-arena/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		Password:    m.Password,
		Avatar:      m.Avatar,
		HighScore:   m.HighScore,
		GamesPlayed: m.GamesPlayed,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Username:    e.Username,
		Email:       e.Email,
		Password:    e.Password,
		Avatar:      e.Avatar,
		HighScore:   e.HighScore,
		GamesPlayed: e.GamesPlayed,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntryEntity decodes a stored row into the domain type. The stored mode
// string is validated here and unknown values fail closed.
func ToEntryEntity(m *model.LeaderboardEntryModel) (*entity.LeaderboardEntry, error) {
	if m == nil {
		return nil, nil
	}

	mode, err := entity.ParseGameMode(m.Mode)
	if err != nil {
		return nil, err
	}

	return &entity.LeaderboardEntry{
		ID:       m.ID,
		UserID:   m.UserID,
		Username: m.Username,
		Avatar:   m.Avatar,
		Score:    m.Score,
		Mode:     mode,
		Date:     m.Date,
	}, nil
}

func ToEntryModel(e *entity.LeaderboardEntry) *model.LeaderboardEntryModel {
	if e == nil {
		return nil
	}

	return &model.LeaderboardEntryModel{
		ID:       e.ID,
		UserID:   e.UserID,
		Username: e.Username,
		Avatar:   e.Avatar,
		Score:    e.Score,
		Mode:     string(e.Mode),
		Date:     e.Date,
	}
}
