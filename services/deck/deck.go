package deck

import (
	"math/rand"

	models "skirmish/models/postgres"
)

// NumCards is the size of the standard reference deck.
const NumCards = 52

// CardsPerSeat is each player's share of an evenly split deck.
const CardsPerSeat = NumCards / 2

/*
 * 'DealtCard' is one card assigned to a game: the owner is nil while the card
 * has not been dealt to a real player yet.
 */
type DealtCard struct {
	OwnerID *int64
	CardID  int64
	Order   int
}

// Shuffle returns a new uniformly random permutation of the given cards.
// The input slice is not modified.
func Shuffle(cards []models.StandardDeckCard) []models.StandardDeckCard {
	shuffled := make([]models.StandardDeckCard, len(cards))
	copy(shuffled, cards)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Deal splits a shuffled deck between seat one and the not-yet-seated second
// player: even indices go to seatOneUserID, odd indices stay unowned until
// someone joins. Both halves number their own cards independently, so each
// owner ends up with orders 0..25.
func Deal(shuffled []models.StandardDeckCard, seatOneUserID int64) []DealtCard {
	dealt := make([]DealtCard, len(shuffled))
	for i, card := range shuffled {
		var owner *int64
		if i%2 == 0 {
			owner = &seatOneUserID
		}
		dealt[i] = DealtCard{
			OwnerID: owner,
			CardID:  card.ID,
			Order:   i / 2,
		}
	}
	return dealt
}
