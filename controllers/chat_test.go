package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPostChatMessageBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &notifierRecorder{}

	router := gin.New()
	router.POST("/chat/:room_id", seedSession(testSession()), PostChatMessage(recorder))

	w := postForm(router, "/chat/17", url.Values{"message": {"your move"}})

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, recorder.chats, 1) {
		assert.Equal(t, "17", recorder.chats[0].roomID)
		assert.Equal(t, "your move", recorder.chats[0].message)
		assert.Equal(t, "creator@example.com", recorder.chats[0].email)
	}
}

func TestPostChatMessageRejectsBlank(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &notifierRecorder{}

	router := gin.New()
	router.POST("/chat/:room_id", seedSession(testSession()), PostChatMessage(recorder))

	w := postForm(router, "/chat/0", url.Values{"message": {"   "}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, recorder.chats)
}

func TestRoomIDFromReferer(t *testing.T) {
	cases := []struct {
		name    string
		referer string
		want    int64
	}{
		{"lobby page", "https://example.com/lobby", 0},
		{"game page", "https://example.com/games/17", 17},
		{"no referer", "", 0},
		{"trailing junk", "https://example.com/games/abc", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roomIDFromReferer(tc.referer))
		})
	}
}

func TestRoomIDEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/room-id", RoomID)

	req, _ := http.NewRequest(http.MethodPost, "/api/room-id", nil)
	req.Header.Set("Referer", "https://example.com/games/42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		RoomID int64 `json:"roomId"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.RoomID)
}
