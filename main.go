package main

import (
	"log"

	"computerstore/config"
	"computerstore/handlers"
	"computerstore/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	// Initialize database
	if err := config.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer config.DB.Close()

	if err := handlers.InitCredentials(); err != nil {
		log.Fatalf("failed to prepare admin credentials: %v", err)
	}

	r := setupRouter()

	// Start the server
	port := config.GetEnv("PORT", "8080")
	log.Printf("Server starting on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// setupRouter registers every route. Token gating is declared per
// route: of the movie endpoints only the list requires a token, while
// every computer endpoint does.
func setupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	auth := middleware.AuthMiddleware()

	r.GET("/", handlers.Home)
	r.GET("/health-check", handlers.CheckConnection)
	r.POST("/login", handlers.LoginUser)

	// Movie routes
	r.GET("/movies", auth, handlers.GetAllMovies)
	r.GET("/movies/:id", handlers.GetMovie)
	r.GET("/movie/", handlers.GetMoviesByCategory)
	r.POST("/movies", handlers.CreateMovie)
	r.PUT("/movies/:id", handlers.UpdateMovie)
	r.DELETE("/movie/:id", handlers.DeleteMovie)

	// Computer routes
	r.GET("/computers", auth, handlers.GetAllComputers)
	r.GET("/computers/:id", auth, handlers.GetComputer)
	r.GET("/computers/brand/", auth, handlers.GetComputersByBrand)
	r.POST("/computers", auth, handlers.CreateComputer)
	r.PUT("/computers/:id", auth, handlers.UpdateComputer)
	r.DELETE("/computers/:id", auth, handlers.DeleteComputer)

	return r
}
