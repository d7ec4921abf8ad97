package usecase

import (
	"snake-arena/internal/entity"
	"snake-arena/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id, hashed string) error {
	args := m.Called(id, hashed)
	return args.Error(0)
}

func (m *MockUserRepository) CountWithHigherScore(score int) (int64, error) {
	args := m.Called(score)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) HighScores() (map[string]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockLeaderboardRepository is a mock implementation of persistent.LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) List(mode *entity.GameMode) ([]*entity.LeaderboardEntry, error) {
	args := m.Called(mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) Submit(entry *entity.LeaderboardEntry) (*entity.User, error) {
	args := m.Called(entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ persistent.LeaderboardRepository = (*MockLeaderboardRepository)(nil)
