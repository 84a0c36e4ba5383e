package postgres

/*
 * 'StandardDeckCard' is one of the 52 cards of the reference deck. The table
 * is seeded once at migration time and never written again: suits 0..3,
 * values 1..13.
 */
type StandardDeckCard struct {
	ID    int64 `gorm:"primaryKey"`
	Suit  int   `gorm:"not null"`
	Value int   `gorm:"not null"`
}

func (StandardDeckCard) TableName() string {
	return "standard_deck_cards"
}

/*
 * 'GameCard' maps one reference card into one game. Exactly 52 rows exist per
 * game from the moment it is created. UserID is NULL while the card has not
 * been dealt to a real player (the second half of the deck before a second
 * player joins); the join reassigns those rows in bulk. CardOrder numbers
 * each owner's half independently, 0..25.
 */
type GameCard struct {
	GameID    int64  `gorm:"primaryKey;uniqueIndex:idx_game_cards_card"`
	CardID    int64  `gorm:"primaryKey;uniqueIndex:idx_game_cards_card"`
	UserID    *int64 `gorm:"index:idx_game_cards_owner"`
	CardOrder int    `gorm:"not null"`

	// Relationships
	Game Game             `gorm:"foreignKey:GameID"`
	Card StandardDeckCard `gorm:"foreignKey:CardID"`
}

func (GameCard) TableName() string {
	return "game_cards"
}
