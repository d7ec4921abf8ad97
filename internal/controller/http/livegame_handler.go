package http

import (
	"errors"
	"net/http"

	"snake-arena/internal/repo/memory"
	"snake-arena/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LiveGameHandler struct {
	liveGameUseCase usecase.LiveGameUseCase
}

func NewLiveGameHandler(liveGameUseCase usecase.LiveGameUseCase) *LiveGameHandler {
	return &LiveGameHandler{
		liveGameUseCase: liveGameUseCase,
	}
}

// List godoc
// @Summary      Live games
// @Description  All matches currently open to spectators
// @Tags         live-games
// @Produce      json
// @Success      200  {array}  entity.LiveGame
// @Router       /live-games [get]
func (h *LiveGameHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.liveGameUseCase.List())
}

// Get godoc
// @Summary      One live game
// @Tags         live-games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  entity.LiveGame
// @Failure      404  {object}  map[string]string
// @Router       /live-games/{id} [get]
func (h *LiveGameHandler) Get(c *gin.Context) {
	game, err := h.liveGameUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, memory.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// Join godoc
// @Summary      Join as spectator
// @Description  Increment the game's viewer count
// @Tags         live-games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /live-games/{id}/join [post]
func (h *LiveGameHandler) Join(c *gin.Context) {
	game, err := h.liveGameUseCase.Join(c.Param("id"))
	if err != nil {
		if errors.Is(err, memory.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined game", "viewers": game.Viewers})
}

// Leave godoc
// @Summary      Leave as spectator
// @Description  Decrement the game's viewer count (never below zero)
// @Tags         live-games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /live-games/{id}/leave [post]
func (h *LiveGameHandler) Leave(c *gin.Context) {
	game, err := h.liveGameUseCase.Leave(c.Param("id"))
	if err != nil {
		if errors.Is(err, memory.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left game", "viewers": game.Viewers})
}
