package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skirmish/middleware"
)

// @Summary Posts a chat message
// @Description Fans the message out to connected clients immediately; nothing is stored
// @Tags chat
// @Accept x-www-form-urlencoded
// @Param room_id path string true "Room id (0 for the lobby, otherwise a game id)"
// @Param message formData string true "Message body"
// @Success 200
// @Failure 400 {object} object{error=string}
// @Router /auth/chat/{room_id} [post]
// @Security ApiKeyAuth
func PostChatMessage(notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		message := c.PostForm("message")
		if strings.TrimSpace(message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message can't be empty"})
			return
		}

		notifier.ChatMessage(c.Param("room_id"), message, session.Email, session.Gravatar, time.Now())

		c.Status(http.StatusOK)
	}
}

// @Summary Resolves the chat room for the current page
// @Description Lobby pages chat in room 0; game pages chat in the room named by the game id in the referring URL
// @Tags chat
// @Produce json
// @Success 200 {object} object{roomId=integer}
// @Router /auth/api/room-id [post]
// @Security ApiKeyAuth
func RoomID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roomId": roomIDFromReferer(c.GetHeader("Referer"))})
}

// roomIDFromReferer maps the referring page to its chat room: the lobby is
// room 0, a game page is the game's id. Anything unparseable falls back to
// the lobby room.
func roomIDFromReferer(referer string) int64 {
	if strings.Contains(referer, "lobby") {
		return 0
	}

	idIndex := strings.LastIndex(referer, "/")
	if idIndex < 0 {
		return 0
	}

	roomID, err := strconv.ParseInt(referer[idIndex+1:], 10, 64)
	if err != nil {
		return 0
	}
	return roomID
}
