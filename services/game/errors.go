package game

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrGameNotFound is returned when the requested game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrDuplicateSeat is returned when a user tries to join a game they
	// already occupy a seat in.
	ErrDuplicateSeat = errors.New("user already seated in this game")

	// ErrGameFull is returned when both seats are taken, including the case
	// where a concurrent join won the second seat first.
	ErrGameFull = errors.New("game is no longer available")
)

// uniqueViolation reports whether err is a unique-constraint violation from
// PostgreSQL. The unique indexes on game_users are the backstop for two
// players racing to join the same game: the loser's insert surfaces here.
func uniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
