package handlers

import (
	"net/http"

	"computerstore/config"

	"github.com/gin-gonic/gin"
)

// Home returns the landing greeting
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Computer Store API"})
}

// CheckConnection reports whether the database is reachable
func CheckConnection(c *gin.Context) {
	if err := config.DB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
