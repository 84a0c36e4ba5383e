package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	models "skirmish/models/postgres"
	"skirmish/services/deck"
)

// DefaultPageSize bounds lobby pages when the caller does not ask for a limit.
const DefaultPageSize = 10

const (
	sqlInsertGame = `INSERT INTO games (creator_id, description) VALUES (?, ?) RETURNING id`

	sqlUpdateDescription = `UPDATE games SET description = ? WHERE id = ?`

	sqlInsertSeat = `INSERT INTO game_users (game_id, user_id, seat) VALUES (?, ?, ?)`

	sqlSelectDeck = `SELECT id, suit, value FROM standard_deck_cards ORDER BY id`

	sqlSelectGame = `SELECT id, creator_id, description, created_at FROM games WHERE id = ?`

	sqlSelectSeats = `
		SELECT game_users.user_id, users.email, users.avatar_key AS gravatar, game_users.seat
		FROM game_users
		JOIN users ON users.id = game_users.user_id
		WHERE game_users.game_id = ?
		ORDER BY game_users.seat`

	sqlSelectCards = `
		SELECT game_cards.user_id, game_cards.card_id, standard_deck_cards.suit,
		       standard_deck_cards.value, game_cards.card_order
		FROM game_cards
		JOIN standard_deck_cards ON standard_deck_cards.id = game_cards.card_id
		WHERE game_cards.game_id = ?
		ORDER BY game_cards.card_order`

	sqlSelectAvailable = `
		SELECT games.id, games.description, games.created_at,
		       users.email AS creator_email, users.avatar_key AS creator_gravatar
		FROM games
		INNER JOIN (
		    SELECT game_id FROM game_users
		    GROUP BY game_id
		    HAVING COUNT(*) < ?
		) AS open_games ON games.id = open_games.game_id
		LEFT JOIN users ON users.id = games.creator_id
		WHERE games.id > ? AND games.creator_id <> ?
		ORDER BY games.id
		LIMIT ? OFFSET ?`

	sqlCountUserSeat = `SELECT COUNT(*) FROM game_users WHERE game_id = ? AND user_id = ?`

	sqlCountSeats = `SELECT COUNT(*) FROM game_users WHERE game_id = ?`

	sqlDealRemaining = `UPDATE game_cards SET user_id = ? WHERE game_id = ? AND user_id IS NULL`
)

/*
 * 'Repository' owns all persistent game state: creation, seat assignment,
 * card ownership and retrieval. Every mutation runs in a single transaction,
 * so a game is never observable half-initialized and a joining player is
 * never seated without their cards.
 */
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CardView is one card as seen by the player holding it.
type CardView struct {
	CardID int64 `json:"card_id"`
	Suit   int   `json:"suit"`
	Value  int   `json:"value"`
	Order  int   `json:"order"`
}

// SeatView is one seated player together with their half of the deck.
type SeatView struct {
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email"`
	Gravatar  string     `json:"gravatar"`
	Seat      int        `json:"seat"`
	CardCount int        `json:"card_count"`
	Cards     []CardView `json:"cards" gorm:"-"`
}

// GameView is the full state of a game: the row itself plus every seated
// player and their cards. A game whose second seat is still empty yields a
// single-user view.
type GameView struct {
	ID          int64      `json:"id"`
	CreatorID   int64      `json:"creator_id"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	Users       []SeatView `json:"users" gorm:"-"`
}

// AvailableGame is one joinable game as listed in the lobby, joined to the
// creator's public identity.
type AvailableGame struct {
	ID              int64     `json:"id"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	CreatorEmail    string    `json:"creator_email"`
	CreatorGravatar string    `json:"creator_gravatar"`
}

// CreatedGame is what Create hands back to the orchestration layer: enough
// to redirect the creator and announce the game to the lobby.
type CreatedGame struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// Create inserts a new game, seats the creator at seat 1 and deals the full
// shuffled deck: half to the creator, half unowned until a second player
// joins. A blank description is replaced with "Game {id}" and persisted.
func (r *Repository) Create(creatorID int64, description string) (*CreatedGame, error) {
	created := CreatedGame{Description: description}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		inserted := description
		if inserted == "" {
			inserted = "placeholder"
		}

		row := tx.Raw(sqlInsertGame, creatorID, inserted).Scan(&created.ID)
		if row.Error != nil {
			return row.Error
		}

		if description == "" {
			created.Description = fmt.Sprintf("Game %d", created.ID)
			if err := tx.Exec(sqlUpdateDescription, created.Description, created.ID).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec(sqlInsertSeat, created.ID, creatorID, 1).Error; err != nil {
			return err
		}

		var cards []models.StandardDeckCard
		if err := tx.Raw(sqlSelectDeck).Scan(&cards).Error; err != nil {
			return err
		}
		if len(cards) != deck.NumCards {
			return fmt.Errorf("standard deck has %d cards, want %d", len(cards), deck.NumCards)
		}

		return insertDealtCards(tx, created.ID, deck.Deal(deck.Shuffle(cards), creatorID))
	})
	if err != nil {
		log.Printf("[GAME-ERROR] creating game for user %d: %v", creatorID, err)
		return nil, err
	}

	return &created, nil
}

// insertDealtCards writes all 52 ownership rows in a single statement.
func insertDealtCards(tx *gorm.DB, gameID int64, dealt []deck.DealtCard) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO game_cards (game_id, card_id, user_id, card_order) VALUES ")

	args := make([]interface{}, 0, len(dealt)*4)
	for i, d := range dealt {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?)")
		args = append(args, gameID, d.CardID, d.OwnerID, d.Order)
	}

	return tx.Exec(sb.String(), args...).Error
}

// Get returns the full view of a game: seats ordered by seat number, each
// with that player's cards and card count.
func (r *Repository) Get(gameID int64) (*GameView, error) {
	var view GameView
	res := r.db.Raw(sqlSelectGame, gameID).Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrGameNotFound
	}

	var seats []struct {
		UserID   int64
		Email    string
		Gravatar string
		Seat     int
	}
	if err := r.db.Raw(sqlSelectSeats, gameID).Scan(&seats).Error; err != nil {
		return nil, err
	}

	var cards []struct {
		UserID    *int64
		CardID    int64
		Suit      int
		Value     int
		CardOrder int
	}
	if err := r.db.Raw(sqlSelectCards, gameID).Scan(&cards).Error; err != nil {
		return nil, err
	}

	view.Users = make([]SeatView, len(seats))
	for i, s := range seats {
		view.Users[i] = SeatView{
			UserID:   s.UserID,
			Email:    s.Email,
			Gravatar: s.Gravatar,
			Seat:     s.Seat,
			Cards:    []CardView{},
		}
		for _, c := range cards {
			if c.UserID == nil || *c.UserID != s.UserID {
				continue
			}
			view.Users[i].Cards = append(view.Users[i].Cards, CardView{
				CardID: c.CardID,
				Suit:   c.Suit,
				Value:  c.Value,
				Order:  c.CardOrder,
			})
		}
		view.Users[i].CardCount = len(view.Users[i].Cards)
	}

	return &view, nil
}

// Available lists joinable games: fewer than two seats taken, not created by
// the calling user, ids strictly greater than the cursor, ascending.
func (r *Repository) Available(userID, cursorGameID int64, limit, offset int) ([]AvailableGame, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	games := []AvailableGame{}
	err := r.db.Raw(sqlSelectAvailable,
		models.MaxSeats, cursorGameID, userID, limit, offset).
		Scan(&games).Error
	if err != nil {
		return nil, err
	}

	return games, nil
}

// Join seats userID at seat 2 of the game and hands them every card still
// unowned. Both steps run in one transaction, so a failure can never leave a
// seated player without cards. A user already seated gets ErrDuplicateSeat;
// losing the seat race to a concurrent join surfaces as ErrGameFull.
func (r *Repository) Join(gameID, userID int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var game struct {
			ID int64
		}
		res := tx.Raw(sqlSelectGame, gameID).Scan(&game)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGameNotFound
		}

		var exists int64
		if err := tx.Raw(sqlCountUserSeat, gameID, userID).Scan(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return ErrDuplicateSeat
		}

		var taken int64
		if err := tx.Raw(sqlCountSeats, gameID).Scan(&taken).Error; err != nil {
			return err
		}
		if taken >= models.MaxSeats {
			return ErrGameFull
		}

		if err := tx.Exec(sqlInsertSeat, gameID, userID, 2).Error; err != nil {
			if uniqueViolation(err) {
				return ErrGameFull
			}
			return err
		}

		res = tx.Exec(sqlDealRemaining, userID, gameID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != deck.CardsPerSeat {
			return fmt.Errorf("reassigned %d cards to user %d, want %d",
				res.RowsAffected, userID, deck.CardsPerSeat)
		}

		return nil
	})
	if err != nil {
		log.Printf("[GAME-ERROR] user %d joining game %d: %v", userID, gameID, err)
		return err
	}

	return nil
}
