package events

// Realtime event names shared with the browser client.
const (
	// GameCreated announces a new joinable game to the lobby.
	GameCreated = "game-created"

	// GameRemoved tells the lobby a game is no longer joinable.
	GameRemoved = "game-removed"

	// ChatMessage carries one chat line; the payload names the room it
	// belongs to, clients filter on it.
	ChatMessage = "chat-message"
)
