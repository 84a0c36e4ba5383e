package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skirmish/middleware"
	"skirmish/services/game"
)

// @Summary Lists games the caller can join
// @Description Games with an open seat, excluding the caller's own, paginated by an ascending id cursor plus limit/offset
// @Tags lobby
// @Produce json
// @Param cursor query integer false "Only games with id greater than this" default(0)
// @Param limit query integer false "Page size" default(10)
// @Param offset query integer false "Rows to skip" default(0)
// @Success 200 {object} object{available_games=[]game.AvailableGame}
// @Router /auth/lobby [get]
// @Security ApiKeyAuth
func AvailableGames(repo *game.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		games, err := repo.Available(session.UserID, cursor, limit, offset)
		if err != nil {
			// The lobby renders empty rather than failing outright
			c.JSON(http.StatusOK, gin.H{"available_games": []game.AvailableGame{}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"available_games": games})
	}
}
