package controllers

import (
	"net/http"
	"strings"

	ginsessions "github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skirmish/middleware"
	models "skirmish/models/postgres"
	"skirmish/services/sessions"
	"skirmish/utils"
)

// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Registers a new account
// @Description Creates a user with a bcrypt-hashed password and a gravatar key derived from the email
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email address"
// @Param password formData string true "Password"
// @Success 201 {object} object{id=integer,email=string,gravatar=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")

		if email == "" || strings.Trim(password, " ") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
			return
		}

		user := models.User{
			Email:        email,
			PasswordHash: string(hash),
			Gravatar:     utils.GravatarKey(email),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"gravatar": user.Gravatar,
		})
	}
}

// @Summary Logs a user in
// @Description Verifies credentials and issues an opaque session id, stored in Redis and in the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email address"
// @Param password formData string true "Password"
// @Success 200 {object} object{session_id=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB, store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		// Minimum input sanitizing
		if strings.Trim(email, " ") == "" || strings.Trim(password, " ") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		sessionID, err := store.Create(c.Request.Context(), &sessions.Session{
			UserID:   user.ID,
			Email:    user.Email,
			Gravatar: user.Gravatar,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No session!"})
			return
		}

		cookieSession := ginsessions.Default(c)
		cookieSession.Set(middleware.SessionIDKey, sessionID)
		if err := cookieSession.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		// The client passes the id back in the socket.io handshake auth
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
	}
}

// @Summary Logs the user out
// @Description Invalidates the Redis session; live realtime connections die on their next packet
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/logout [delete]
// @Security ApiKeyAuth
func Logout(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieSession := ginsessions.Default(c)
		id, _ := cookieSession.Get(middleware.SessionIDKey).(string)
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
			return
		}

		if err := store.Invalidate(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
			return
		}

		cookieSession.Delete(middleware.SessionIDKey)
		if err := cookieSession.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
	}
}

// @Summary Returns the caller's profile
// @Tags auth
// @Produce json
// @Success 200 {object} object{id=integer,email=string,gravatar=string,stats=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", session.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"gravatar": user.Gravatar,
			"stats":    user.Stats,
		})
	}
}
