package utils

import (
	"errors" // Sentinel errors
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify a server-side session and the account behind it
type Claims struct {
	SessionID            string `json:"sid"`        // Redis session id
	AccountID            int64  `json:"account_id"` // Account within the role's list
	Role                 string `json:"role"`       // user or trainer
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a token for a session that expires after ttl
func GenerateJWT(sessionID string, accountID int64, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := Claims{
		SessionID: sessionID, // Session lookup key
		AccountID: accountID, // Account id
		Role:      role,      // Account role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,                        // jti mirrors the session
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, ErrInvalidToken
}
