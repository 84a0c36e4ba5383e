package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"skirmish/models/postgres"
	"skirmish/services/game"
)

func TestAvailableGamesListsOpenSeats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, mock := newMockRepo(t)

	router := gin.New()
	router.GET("/lobby", seedSession(testSession()), AvailableGames(repo))

	mock.ExpectQuery(`SELECT games.id, games.description`).
		WithArgs(postgres.MaxSeats, int64(0), int64(1), game.DefaultPageSize, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "creator_email", "creator_gravatar"}).
			AddRow(int64(3), "Game 3", "a@example.com", "aaaa").
			AddRow(int64(7), "Game 7", "b@example.com", "bbbb"))

	req, _ := http.NewRequest(http.MethodGet, "/lobby", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AvailableGames []game.AvailableGame `json:"available_games"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.AvailableGames, 2)
	assert.Equal(t, int64(3), body.AvailableGames[0].ID)
	assert.Equal(t, "b@example.com", body.AvailableGames[1].CreatorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableGamesPassesPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, mock := newMockRepo(t)

	router := gin.New()
	router.GET("/lobby", seedSession(testSession()), AvailableGames(repo))

	mock.ExpectQuery(`SELECT games.id, games.description`).
		WithArgs(postgres.MaxSeats, int64(20), int64(1), 5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "creator_email", "creator_gravatar"}))

	req, _ := http.NewRequest(http.MethodGet, "/lobby?cursor=20&limit=5&offset=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableGamesRendersEmptyOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, mock := newMockRepo(t)

	router := gin.New()
	router.GET("/lobby", seedSession(testSession()), AvailableGames(repo))

	mock.ExpectQuery(`SELECT games.id, games.description`).
		WillReturnError(errors.New("connection reset"))

	req, _ := http.NewRequest(http.MethodGet, "/lobby", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available_games": []}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
