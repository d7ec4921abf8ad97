package persistent

import (
	"snake-arena/internal/entity"
	"snake-arena/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id, hashed string) error
	CountWithHigherScore(score int) (int64, error)
	HighScores() (map[string]int, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

func (r *userRepository) UpdatePassword(id, hashed string) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

// HighScores returns every user's high score keyed by user ID, for warming
// the rank cache.
func (r *userRepository) HighScores() (map[string]int, error) {
	var rows []model.UserModel
	if err := r.db.Select("id", "high_score").Find(&rows).Error; err != nil {
		return nil, err
	}
	scores := make(map[string]int, len(rows))
	for i := range rows {
		scores[rows[i].ID] = rows[i].HighScore
	}
	return scores, nil
}

// CountWithHigherScore counts users whose high score strictly exceeds the
// given score. Stats rank is this count plus one.
func (r *userRepository) CountWithHigherScore(score int) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where("high_score > ?", score).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
