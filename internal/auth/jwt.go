// Package auth contain implementation of each authentication route handlers
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// SECRET_KEY signs every access token, read once at startup.
var SECRET_KEY = os.Getenv("SECRET_KEY")

// JwtIssuer is the expected issuer claim of every token this server signs
const JwtIssuer = "Wagehire"

// AccessTokenTTL is how long an access token stays valid
const AccessTokenTTL = 24 * time.Hour

// TokenClaims is the JWT payload: subject is the user id, plus email and role
// so the frontend can gate views without an extra profile call.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateStandardToken signs an access token for the given user. The second
// return value is reserved for a refresh token.
func GenerateStandardToken(userID uuid.UUID, email string, role string) (string, string, error) {
	return GenerateTokenWithDuration(userID, email, role, AccessTokenTTL, JwtIssuer)
}

// GenerateTokenWithDuration signs a token with an arbitrary lifetime and issuer.
func GenerateTokenWithDuration(userID uuid.UUID, email string, role string, duration time.Duration, issuer string) (string, string, error) {

	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signedToken, err := generatedAccessToken.SignedString([]byte(SECRET_KEY))
	if err != nil {
		return "", "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, "", nil
}

// ValidatedToken parses and verifies an encoded access token.
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(SECRET_KEY), nil
	})
}
