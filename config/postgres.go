package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	models "skirmish/models/postgres"
	"skirmish/services/deck"
)

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM() (*gorm.DB, error) {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	database := os.Getenv("POSTGRES_DATABASE")
	verbose := os.Getenv("VERBOSE_POSTGRES")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		user, password, host, port, database)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL: %v", err)
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if verbose == "true" {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Info,
				Colorful:      true,
			},
		)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL with GORM: %v", err)
		return nil, err
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		log.Printf("Error pinging PostgreSQL: %v", err)
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// MigrateDatabase migrates the GORM models to the PostgreSQL database and
// seeds the 52-card reference deck on first run.
func MigrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		models.User{},
		models.Game{},
		models.GameUser{},
		models.StandardDeckCard{},
		models.GameCard{})
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	if err := seedStandardDeck(db); err != nil {
		return fmt.Errorf("deck seed failed: %w", err)
	}

	log.Println("PostgreSQL database migrated successfully")
	return nil
}

// seedStandardDeck inserts the 52 reference cards once: suits 0..3, values
// 1..13. The table is never written again after this.
func seedStandardDeck(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StandardDeckCard{}).Count(&count).Error; err != nil {
		return err
	}
	if count == deck.NumCards {
		return nil
	}
	if count != 0 {
		return fmt.Errorf("standard_deck_cards holds %d rows, want 0 or %d", count, deck.NumCards)
	}

	cards := make([]models.StandardDeckCard, 0, deck.NumCards)
	for suit := 0; suit < 4; suit++ {
		for value := 1; value <= 13; value++ {
			cards = append(cards, models.StandardDeckCard{Suit: suit, Value: value})
		}
	}

	return db.Create(&cards).Error
}
