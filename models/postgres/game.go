package postgres

import (
	"time"
)

// A game holds at most two seats. Once both are taken it no longer shows up
// in the lobby and cannot be joined again.
const MaxSeats = 2

/*
 * 'Game' is a single two-player match. It is created together with the
 * creator's seat and a fully dealt deck, in one transaction. The description
 * is never blank: an empty one is replaced with "Game {id}" at creation.
 */
type Game struct {
	ID          int64     `gorm:"primaryKey"`
	CreatorID   int64     `gorm:"not null;index:idx_games_creator"`
	Description string    `gorm:"size:100;not null"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Creator User       `gorm:"foreignKey:CreatorID"`
	Seats   []GameUser `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Cards   []GameCard `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (Game) TableName() string {
	return "games"
}

/*
 * 'GameUser' assigns a user to one of the two seats of a game. The two unique
 * indexes are the race backstop for concurrent joins: a user can occupy a
 * game at most once, and a seat number can be taken at most once.
 */
type GameUser struct {
	GameID int64 `gorm:"primaryKey;uniqueIndex:idx_game_users_seat"`
	UserID int64 `gorm:"primaryKey"`
	Seat   int   `gorm:"not null;uniqueIndex:idx_game_users_seat"`

	// Relationships
	Game Game `gorm:"foreignKey:GameID"`
	User User `gorm:"foreignKey:UserID"`
}

func (GameUser) TableName() string {
	return "game_users"
}
