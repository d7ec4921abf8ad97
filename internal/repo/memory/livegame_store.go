// Package memory holds the process-scoped live game registry. Live games are
// created fresh on every start and are never persisted.
package memory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"snake-arena/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type LiveGameStore struct {
	mu    sync.RWMutex
	games map[string]*entity.LiveGame
}

func NewLiveGameStore() *LiveGameStore {
	return &LiveGameStore{
		games: make(map[string]*entity.LiveGame),
	}
}

// Put registers or replaces a live game.
func (s *LiveGameStore) Put(game *entity.LiveGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *game
	s.games[game.ID] = &copied
}

// List returns a snapshot of all live games, most recently started first.
func (s *LiveGameStore) List() []*entity.LiveGame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*entity.LiveGame, 0, len(s.games))
	for _, game := range s.games {
		copied := *game
		games = append(games, &copied)
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].StartedAt.After(games[j].StartedAt)
	})
	return games
}

// Get returns a snapshot of one game.
func (s *LiveGameStore) Get(id string) (*entity.LiveGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

// Join increments the viewer count under the write lock so concurrent calls
// never lose updates.
func (s *LiveGameStore) Join(id string) (*entity.LiveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	game.Viewers++
	copied := *game
	return &copied, nil
}

// Leave decrements the viewer count, flooring at zero.
func (s *LiveGameStore) Leave(id string) (*entity.LiveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if game.Viewers > 0 {
		game.Viewers--
	}
	copied := *game
	return &copied, nil
}

// SeedDemoGames loads the two spectator games shown before any real match is
// streamed.
func (s *LiveGameStore) SeedDemoGames() {
	now := time.Now().UTC()

	s.Put(&entity.LiveGame{
		ID:         "g1",
		PlayerID:   "2",
		PlayerName: "NeonViper",
		Score:      450,
		Mode:       entity.ModePassThrough,
		Snake:      []entity.Position{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}},
		Food:       entity.Position{X: 15, Y: 15},
		Status:     entity.StatusPlaying,
		Viewers:    12,
		StartedAt:  now.Add(-5 * time.Minute),
	})

	s.Put(&entity.LiveGame{
		ID:         "g2",
		PlayerID:   "3",
		PlayerName: "PixelPython",
		Score:      120,
		Mode:       entity.ModeWalls,
		Snake:      []entity.Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Food:       entity.Position{X: 5, Y: 10},
		Status:     entity.StatusPlaying,
		Viewers:    5,
		StartedAt:  now.Add(-2 * time.Minute),
	})
}
