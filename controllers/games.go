package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skirmish/middleware"
	"skirmish/services/game"
)

// @Summary Creates a new game
// @Description Creates a game, seats the creator and deals the deck in one transaction, then announces it to the lobby
// @Tags games
// @Accept x-www-form-urlencoded
// @Param description formData string false "Game description (defaults to Game {id})"
// @Success 302 {string} string "Redirect to the game page"
// @Router /auth/games [post]
// @Security ApiKeyAuth
func CreateGame(repo *game.Repository, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		created, err := repo.Create(session.UserID, c.PostForm("description"))
		if err != nil {
			// The user gets the lobby back rather than an error page; the
			// failure is already logged at the repository.
			c.Redirect(http.StatusFound, "/lobby")
			return
		}

		// Broadcast only follows a committed state change
		notifier.GameCreated(created.ID, created.Description, session.Email, session.Gravatar)

		c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", created.ID))
	}
}

// @Summary Returns the full state of a game
// @Description Game row plus seated players, each with their cards; one user entry while seat 2 is empty
// @Tags games
// @Produce json
// @Param id path integer true "Game id"
// @Success 200 {object} game.GameView
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/games/{id} [get]
// @Security ApiKeyAuth
func GetGame(repo *game.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		view, err := repo.Get(gameID)
		if err != nil {
			if errors.Is(err, game.ErrGameNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading game"})
			}
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

// @Summary Joins an open game
// @Description Takes seat 2 and receives the undealt half of the deck atomically; the lobby is told the game is gone
// @Tags games
// @Param id path integer true "Game id"
// @Success 302 {string} string "Redirect to the game page, or back to the lobby when the game is unavailable"
// @Router /auth/games/{id}/join [post]
// @Security ApiKeyAuth
func JoinGame(repo *game.Repository, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/lobby")
			return
		}

		if err := repo.Join(gameID, session.UserID); err != nil {
			// Full, duplicate seat or missing game all fall back the same
			// way: the lobby no longer offers this game.
			c.Redirect(http.StatusFound, "/lobby")
			return
		}

		notifier.GameRemoved(gameID)

		c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", gameID))
	}
}
