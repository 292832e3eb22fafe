package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"computerstore/config"
	"computerstore/models"

	"github.com/gin-gonic/gin"
)

// GetAllMovies retrieves all movies
func GetAllMovies(c *gin.Context) {
	movies := []models.Movie{}

	rows, err := config.DB.Query(`SELECT id, title, overview, year, rating, category FROM movies`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch movies"})
		return
	}
	defer rows.Close()

	for rows.Next() {
		var movie models.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Overview,
			&movie.Year,
			&movie.Rating,
			&movie.Category,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process movies"})
			return
		}
		movies = append(movies, movie)
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie retrieves a specific movie by ID
func GetMovie(c *gin.Context) {
	// Get movie ID from URL
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	var movie models.Movie
	err = config.DB.QueryRow(
		`SELECT id, title, overview, year, rating, category FROM movies WHERE id = ?`,
		movieID,
	).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Overview,
		&movie.Year,
		&movie.Rating,
		&movie.Category,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// GetMoviesByCategory retrieves all movies in a category.
// An empty result is a 404, matching the by-id lookup.
func GetMoviesByCategory(c *gin.Context) {
	var query models.MovieCategoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingError(c, err)
		return
	}

	rows, err := config.DB.Query(
		`SELECT id, title, overview, year, rating, category FROM movies WHERE category = ?`,
		query.Category,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch movies"})
		return
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var movie models.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Overview,
			&movie.Year,
			&movie.Rating,
			&movie.Category,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process movies"})
			return
		}
		movies = append(movies, movie)
	}

	if len(movies) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// CreateMovie adds a new movie
func CreateMovie(c *gin.Context) {
	var input models.MovieInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	// Insert movie into database
	result, err := config.DB.Exec(
		`INSERT INTO movies (title, overview, year, rating, category) VALUES (?, ?, ?, ?, ?)`,
		input.Title, input.Overview, input.Year, input.Rating, input.Category,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create movie"})
		return
	}

	movieID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get movie ID"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "movie created successfully",
		"movie_id": movieID,
	})
}

// UpdateMovie overwrites every mutable field of an existing movie
func UpdateMovie(c *gin.Context) {
	// Get movie ID from URL
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	var input models.MovieInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	// Check the movie exists before writing
	var exists bool
	err = config.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`, movieID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}

	_, err = config.DB.Exec(
		`UPDATE movies SET title = ?, overview = ?, year = ?, rating = ?, category = ? WHERE id = ?`,
		input.Title, input.Overview, input.Year, input.Rating, input.Category, movieID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie updated successfully"})
}

// DeleteMovie removes a specific movie
func DeleteMovie(c *gin.Context) {
	// Get movie ID from URL
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	var exists bool
	err = config.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`, movieID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}

	_, err = config.DB.Exec(`DELETE FROM movies WHERE id = ?`, movieID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted successfully"})
}
