package socket_io

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"skirmish/constants/events"
)

/*
 * 'Broadcaster' is the one outbound path for game-lifecycle and chat events.
 * It is constructed around the socket.io server at startup and handed to the
 * HTTP controllers, which call it only after a committed state change.
 *
 * All events are best-effort global fan-out to currently connected clients:
 * no acknowledgement, no retry, no replay for clients that were offline. The
 * chat payload carries the room id and clients filter on it.
 */
type Broadcaster struct {
	server *socket.Server
}

func NewBroadcaster(server *socket.Server) *Broadcaster {
	return &Broadcaster{server: server}
}

// GameCreated announces a freshly committed game to every connected lobby.
func (b *Broadcaster) GameCreated(gameID int64, description, creatorEmail, creatorGravatar string) {
	b.server.Emit(events.GameCreated, gin.H{
		"gameId":          gameID,
		"description":     description,
		"creatorEmail":    creatorEmail,
		"creatorGravatar": creatorGravatar,
	})
}

// GameRemoved tells every connected lobby the game can no longer be joined.
func (b *Broadcaster) GameRemoved(gameID int64) {
	b.server.Emit(events.GameRemoved, gin.H{
		"gameId": gameID,
	})
}

// ChatMessage fans out one chat line. Messages are never stored; this is the
// only place they exist outside the sender's request.
func (b *Broadcaster) ChatMessage(roomID, message, senderEmail, gravatar string, timestamp time.Time) {
	b.server.Emit(events.ChatMessage, gin.H{
		"roomId":      roomID,
		"message":     message,
		"senderEmail": senderEmail,
		"gravatar":    gravatar,
		"timestamp":   timestamp.UnixMilli(),
	})
}
