package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "skirmish/models/postgres"
)

func standardDeck() []models.StandardDeckCard {
	cards := make([]models.StandardDeckCard, 0, NumCards)
	id := int64(1)
	for suit := 0; suit < 4; suit++ {
		for value := 1; value <= 13; value++ {
			cards = append(cards, models.StandardDeckCard{ID: id, Suit: suit, Value: value})
			id++
		}
	}
	return cards
}

func TestShuffleIsPermutation(t *testing.T) {
	original := standardDeck()
	shuffled := Shuffle(original)

	assert.Len(t, shuffled, NumCards)

	seen := make(map[int64]models.StandardDeckCard, NumCards)
	for _, card := range shuffled {
		_, dup := seen[card.ID]
		assert.False(t, dup, "card %d appears twice", card.ID)
		seen[card.ID] = card
	}

	// Every canonical (suit, value) pair survives the shuffle
	for _, card := range original {
		got, ok := seen[card.ID]
		assert.True(t, ok, "card %d missing after shuffle", card.ID)
		assert.Equal(t, card.Suit, got.Suit)
		assert.Equal(t, card.Value, got.Value)
	}
}

func TestShuffleDoesNotModifyInput(t *testing.T) {
	original := standardDeck()
	Shuffle(original)

	for i, card := range standardDeck() {
		assert.Equal(t, card.ID, original[i].ID)
	}
}

func TestDealSplitsEvenly(t *testing.T) {
	creatorID := int64(7)
	dealt := Deal(Shuffle(standardDeck()), creatorID)

	assert.Len(t, dealt, NumCards)

	creatorCards := 0
	unowned := 0
	for i, card := range dealt {
		assert.Equal(t, i/2, card.Order)
		if card.OwnerID != nil {
			assert.Equal(t, creatorID, *card.OwnerID)
			creatorCards++
		} else {
			unowned++
		}
	}

	assert.Equal(t, CardsPerSeat, creatorCards)
	assert.Equal(t, CardsPerSeat, unowned)
}

func TestDealOrdersEachHalfIndependently(t *testing.T) {
	dealt := Deal(standardDeck(), 1)

	ownedOrders := make([]int, 0, CardsPerSeat)
	unownedOrders := make([]int, 0, CardsPerSeat)
	for _, card := range dealt {
		if card.OwnerID != nil {
			ownedOrders = append(ownedOrders, card.Order)
		} else {
			unownedOrders = append(unownedOrders, card.Order)
		}
	}

	for i := 0; i < CardsPerSeat; i++ {
		assert.Equal(t, i, ownedOrders[i])
		assert.Equal(t, i, unownedOrders[i])
	}
}
