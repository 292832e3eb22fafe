package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"computerstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetMovie(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/movies", validMovie())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string `json:"message"`
		MovieID int    `json:"movie_id"`
	}
	decodeBody(t, w, &created)
	require.NotZero(t, created.MovieID)

	w = performRequest(t, r, http.MethodGet, fmt.Sprintf("/movies/%d", created.MovieID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movie models.Movie
	decodeBody(t, w, &movie)
	assert.Equal(t, created.MovieID, movie.ID)
	assert.Equal(t, "Trainspotting", movie.Title)
	assert.Equal(t, "Edinburgh heroin drama", movie.Overview)
	assert.Equal(t, 1996, movie.Year)
	assert.Equal(t, 8.1, movie.Rating)
	assert.Equal(t, "Drama", movie.Category)
}

func TestGetMovieNotFound(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodGet, "/movies/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "movie not found")
}

func TestGetMovieInvalidID(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodGet, "/movies/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodGet, "/movies/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMovieValidation(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	tests := []struct {
		name  string
		patch map[string]any
		field string
	}{
		{"short title", map[string]any{"title": "abc"}, "Title"},
		{"long title", map[string]any{"title": "a title that is far too long"}, "Title"},
		{"short overview", map[string]any{"overview": "hi"}, "Overview"},
		{"future year", map[string]any{"year": 2030}, "Year"},
		{"rating too high", map[string]any{"rating": 11.0}, "Rating"},
		{"rating too low", map[string]any{"rating": 0.5}, "Rating"},
		{"short category", map[string]any{"category": "War"}, "Category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validMovie()
			for k, v := range tt.patch {
				body[k] = v
			}

			w := performRequest(t, r, http.MethodPost, "/movies", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}

	// Nothing was written
	assert.Equal(t, 0, countRows(t, "movies"))
}

func TestUpdateMovie(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/movies", validMovie())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		MovieID int `json:"movie_id"`
	}
	decodeBody(t, w, &created)

	updated := map[string]any{
		"title":    "The Godfather",
		"overview": "A mafia dynasty changes hands",
		"year":     1972,
		"rating":   9.2,
		"category": "Crime drama",
	}
	w = performRequest(t, r, http.MethodPut, fmt.Sprintf("/movies/%d", created.MovieID), updated)
	require.Equal(t, http.StatusOK, w.Code)

	// Every mutable field was overwritten
	w = performRequest(t, r, http.MethodGet, fmt.Sprintf("/movies/%d", created.MovieID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movie models.Movie
	decodeBody(t, w, &movie)
	assert.Equal(t, created.MovieID, movie.ID)
	assert.Equal(t, "The Godfather", movie.Title)
	assert.Equal(t, "A mafia dynasty changes hands", movie.Overview)
	assert.Equal(t, 1972, movie.Year)
	assert.Equal(t, 9.2, movie.Rating)
	assert.Equal(t, "Crime drama", movie.Category)
}

func TestUpdateMovieNotFound(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPut, "/movies/999", validMovie())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, countRows(t, "movies"))
}

func TestDeleteMovie(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/movies", validMovie())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		MovieID int `json:"movie_id"`
	}
	decodeBody(t, w, &created)

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/movie/%d", created.MovieID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, countRows(t, "movies"))

	// Deleting again is a 404
	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/movie/%d", created.MovieID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMoviesByCategory(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	first := validMovie()
	second := validMovie()
	second["title"] = "Another Drama"

	require.Equal(t, http.StatusCreated, performRequest(t, r, http.MethodPost, "/movies", first).Code)
	require.Equal(t, http.StatusCreated, performRequest(t, r, http.MethodPost, "/movies", second).Code)

	w := performRequest(t, r, http.MethodGet, "/movie/?category=Drama", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	assert.Len(t, movies, 2)

	// No match maps to 404
	w = performRequest(t, r, http.MethodGet, "/movie/?category=Romance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Query constraints apply: category must be at least 5 chars
	w = performRequest(t, r, http.MethodGet, "/movie/?category=War", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetAllMovies(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	require.Equal(t, http.StatusCreated, performRequest(t, r, http.MethodPost, "/movies", validMovie()).Code)

	w = performRequest(t, r, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	assert.Len(t, movies, 1)
}
