package http

import (
	"errors"
	"net/http"

	"snake-arena/internal/entity"
	"snake-arena/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUseCase usecase.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
	}
}

// Score is a pointer so a submitted zero survives required validation.
type SubmitScoreRequest struct {
	Score *int   `json:"score" binding:"required"`
	Mode  string `json:"mode" binding:"required"`
}

// List godoc
// @Summary      Leaderboard
// @Description  All entries sorted by score descending with positional ranks
// @Tags         leaderboard
// @Produce      json
// @Param        mode query string false "Game mode filter (pass-through or walls)"
// @Success      200  {array}   entity.LeaderboardEntry
// @Failure      400  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) List(c *gin.Context) {
	entries, err := h.leaderboardUseCase.List(c.Query("mode"))
	if err != nil {
		if errors.Is(err, entity.ErrUnknownGameMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Submit godoc
// @Summary      Submit a score
// @Description  Record a finished game's score for the authenticated user
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitScoreRequest true "Score submission"
// @Success      201  {object}  entity.LeaderboardEntry
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /leaderboard/submit [post]
func (h *LeaderboardHandler) Submit(c *gin.Context) {
	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score and mode are required"})
		return
	}

	entry, err := h.leaderboardUseCase.Submit(email.(string), *req.Score, req.Mode)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownGameMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
