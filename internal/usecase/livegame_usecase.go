package usecase

import (
	"snake-arena/internal/entity"
	"snake-arena/internal/repo/memory"
)

type LiveGameUseCase interface {
	List() []*entity.LiveGame
	Get(id string) (*entity.LiveGame, error)
	Join(id string) (*entity.LiveGame, error)
	Leave(id string) (*entity.LiveGame, error)
}

type liveGameUseCase struct {
	store *memory.LiveGameStore
}

func NewLiveGameUseCase(store *memory.LiveGameStore) LiveGameUseCase {
	return &liveGameUseCase{store: store}
}

func (uc *liveGameUseCase) List() []*entity.LiveGame {
	return uc.store.List()
}

func (uc *liveGameUseCase) Get(id string) (*entity.LiveGame, error) {
	return uc.store.Get(id)
}

func (uc *liveGameUseCase) Join(id string) (*entity.LiveGame, error) {
	return uc.store.Join(id)
}

func (uc *liveGameUseCase) Leave(id string) (*entity.LiveGame, error) {
	return uc.store.Leave(id)
}
