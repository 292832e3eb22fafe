package handlers

import (
	"net/http"

	"computerstore/config"
	"computerstore/models"
	"computerstore/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// adminPasswordHash is derived once at startup so login compares a
// bcrypt hash rather than the raw configured password
var adminPasswordHash []byte

// InitCredentials hashes the configured admin password.
// Must run after config.LoadEnv.
func InitCredentials() error {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(config.GetEnv("ADMIN_PASSWORD", "admin")),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}
	adminPasswordHash = hash
	return nil
}

// LoginUser authenticates the admin and returns a JWT token
func LoginUser(c *gin.Context) {
	var input models.UserLogin

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	if input.Email != config.GetEnv("ADMIN_EMAIL", "admin@gmail.com") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	// Generate JWT token
	token, err := utils.GenerateJWT(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
