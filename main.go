package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"skirmish/config"
	_ "skirmish/docs"
	"skirmish/middleware"
	"skirmish/routes"
	"skirmish/services/game"
	"skirmish/services/sessions"
	"skirmish/services/socket_io"
)

// @title Skirmish API
// @version 1.0
// @description Gin-Gonic server for the "Skirmish" card-game lobby
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		log.Println("Database migrated successfully")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer config.CloseRedis(redisClient)

	// One session store, shared by the HTTP middleware and the realtime
	// layer on purpose: logging out kills live sockets too.
	sessionStore := sessions.NewStore(redisClient, sessions.DefaultTTL)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	sio := socket_io.NewSocketServer()
	sio.Start(r, sessionStore)

	repo := game.NewRepository(gormDB)
	notifier := socket_io.NewBroadcaster(sio.Server)

	routes.SetupRoutes(r, gormDB, sessionStore, repo, notifier)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		if os.Getenv("USE_HTTPS") == "true" {
			port = "443"
		} else {
			port = "8080"
		}
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("TLS_CERT_FILE")
		keyFile := os.Getenv("TLS_KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
