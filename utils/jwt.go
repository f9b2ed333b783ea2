package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	accessSecret  string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
)

// InitJWT initializes the JWT secret and expiry times.
func InitJWT(secret string, accessExp, refreshExp time.Duration) {
	accessSecret = secret
	accessExpiry = accessExp
	refreshExpiry = refreshExp
}

// Claims carries the authenticated actor. HotelID is 0 for super-admins.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Role    string `json:"role"`
	HotelID uint   `json:"hotel_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a short-lived JWT access token.
func GenerateAccessToken(userID uint, role string, hotelID uint) (string, error) {
	claims := Claims{
		UserID:  userID,
		Role:    role,
		HotelID: hotelID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(accessSecret))
}

// GenerateRefreshToken generates a cryptographically random refresh token.
func GenerateRefreshToken() (string, error) {
	return uuid.New().String(), nil
}

// ValidateAccessToken validates and parses a JWT access token.
func ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// HashRefreshToken creates a SHA-256 hash of the refresh token so only the
// hash is stored.
func HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// RefreshTokenExpiry returns the refresh token expiry duration.
func RefreshTokenExpiry() time.Duration {
	return refreshExpiry
}
