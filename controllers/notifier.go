package controllers

import "time"

/*
 * 'Notifier' is the outbound event path handlers publish on after a
 * committed state change. The realtime broadcaster satisfies it in
 * production; tests substitute a recorder.
 */
type Notifier interface {
	GameCreated(gameID int64, description, creatorEmail, creatorGravatar string)
	GameRemoved(gameID int64)
	ChatMessage(roomID, message, senderEmail, gravatar string, timestamp time.Time)
}
