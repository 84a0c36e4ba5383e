package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skirmish/controllers"
	"skirmish/middleware"
	"skirmish/services/game"
	"skirmish/services/sessions"
)

// SetupRoutes configures all API routes. Every dependency is constructed in
// main and passed in; handlers never reach into ambient state for them.
func SetupRoutes(router *gin.Engine, db *gorm.DB, sessionStore *sessions.Store,
	repo *game.Repository, notifier controllers.Notifier) {

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/signup", controllers.SignUp(db))

	api.POST("/login", controllers.Login(db, sessionStore))

	authenticated := api.Group("/auth")
	authenticated.Use(middleware.AuthRequired(sessionStore))
	{
		authenticated.DELETE("/logout", controllers.Logout(sessionStore))

		authenticated.GET("/me", controllers.Me(db))

		authenticated.GET("/lobby", controllers.AvailableGames(repo))

		authenticated.POST("/games", controllers.CreateGame(repo, notifier))

		authenticated.GET("/games/:id", controllers.GetGame(repo))

		authenticated.POST("/games/:id/join", controllers.JoinGame(repo, notifier))

		authenticated.POST("/chat/:room_id", controllers.PostChatMessage(notifier))

		authenticated.POST("/api/room-id", controllers.RoomID)
	}
}
