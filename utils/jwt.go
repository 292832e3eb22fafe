package utils

import (
	"errors"
	"time"

	"computerstore/config"

	"github.com/golang-jwt/jwt/v4"
)

// Token lifetime in minutes
const TokenExpirationMinutes = 60

// JWTClaim represents JWT claims
type JWTClaim struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "your_secret_key_change_this"))
}

// GenerateJWT generates a signed token carrying the given email
func GenerateJWT(email string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationMinutes * time.Minute)

	claims := &JWTClaim{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken validates a JWT token and returns its claims
func ValidateToken(signedToken string) (*JWTClaim, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret(), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
