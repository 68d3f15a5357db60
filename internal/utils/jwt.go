package utils

import (
	"errors"
	"fmt"
	"time"

	"spm-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims carries the caller identity used for authorization
type JWTClaims struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	SatkerID *int   `json:"satker_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 token for the user
func GenerateAccessToken(user models.User, secret string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		SatkerID: user.SatkerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a token signed by GenerateAccessToken
func ValidateToken(tokenString, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// CurrentUser converts the claims into the service-layer caller
func (c *JWTClaims) CurrentUser() models.CurrentUser {
	return models.CurrentUser{
		ID:       c.UserID,
		Name:     c.Name,
		Role:     c.Role,
		SatkerID: c.SatkerID,
	}
}

// GetCurrentTimestamp returns the current unix time in seconds
func GetCurrentTimestamp() int64 {
	return time.Now().Unix()
}
