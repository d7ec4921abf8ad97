package persistent

import (
	"snake-arena/internal/entity"
	"snake-arena/internal/model"

	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	List(mode *entity.GameMode) ([]*entity.LeaderboardEntry, error)
	Submit(entry *entity.LeaderboardEntry) (*entity.User, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// List returns entries ordered by score descending. Ties keep submission
// order (date, then id). Ranks are not read from storage; the usecase
// assigns them positionally.
func (r *leaderboardRepository) List(mode *entity.GameMode) ([]*entity.LeaderboardEntry, error) {
	query := r.db.Model(&model.LeaderboardEntryModel{})
	if mode != nil {
		query = query.Where("mode = ?", string(*mode))
	}

	var entryModels []model.LeaderboardEntryModel
	if err := query.Order("score DESC, date ASC, id ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := ToEntryEntity(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Submit inserts the entry and updates the owner's counters in one
// transaction: high score rises only when beaten, games played always
// increments. Returns the user as stored after the update.
func (r *leaderboardRepository) Submit(entry *entity.LeaderboardEntry) (*entity.User, error) {
	entryModel := ToEntryModel(entry)

	var userModel model.UserModel
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", entry.UserID).First(&userModel).Error; err != nil {
			return err
		}

		if err := tx.Create(entryModel).Error; err != nil {
			return err
		}

		// Counters move as SQL expressions: two submissions for the same
		// user overlapping under READ COMMITTED would otherwise write back
		// stale reads, losing an increment or regressing the high score.
		if err := tx.Model(&model.UserModel{}).
			Where("id = ?", entry.UserID).
			Updates(map[string]interface{}{
				"games_played": gorm.Expr("games_played + 1"),
				"high_score":   gorm.Expr("GREATEST(high_score, ?)", entry.Score),
			}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", entry.UserID).First(&userModel).Error
	})
	if err != nil {
		return nil, err
	}

	entry.ID = entryModel.ID
	entry.Date = entryModel.Date
	return ToUserEntity(&userModel), nil
}
