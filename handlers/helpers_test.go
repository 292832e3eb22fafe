package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"computerstore/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, config.OpenDB(":memory:"))
	// A pool of in-memory connections would each see a different database
	config.DB.SetMaxOpenConns(1)
	t.Cleanup(func() { config.DB.Close() })
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", Home)
	r.GET("/health-check", CheckConnection)
	r.POST("/login", LoginUser)

	r.GET("/movies", GetAllMovies)
	r.GET("/movies/:id", GetMovie)
	r.GET("/movie/", GetMoviesByCategory)
	r.POST("/movies", CreateMovie)
	r.PUT("/movies/:id", UpdateMovie)
	r.DELETE("/movie/:id", DeleteMovie)

	r.GET("/computers", GetAllComputers)
	r.GET("/computers/:id", GetComputer)
	r.GET("/computers/brand/", GetComputersByBrand)
	r.POST("/computers", CreateComputer)
	r.PUT("/computers/:id", UpdateComputer)
	r.DELETE("/computers/:id", DeleteComputer)

	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func countRows(t *testing.T, table string) int {
	t.Helper()
	var count int
	require.NoError(t, config.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func validMovie() map[string]any {
	return map[string]any{
		"title":    "Trainspotting",
		"overview": "Edinburgh heroin drama",
		"year":     1996,
		"rating":   8.1,
		"category": "Drama",
	}
}

func validComputer() map[string]any {
	return map[string]any{
		"brand":     "Dell",
		"model":     "XPS 15",
		"color":     "Silver",
		"processor": "Intel Core i7",
		"ram":       16,
		"storage":   512,
		"price":     1499.99,
		"category":  "Laptop",
	}
}
