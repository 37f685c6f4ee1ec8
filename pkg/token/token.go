// Package token signs and checks the HS256 bearer tokens accepted by the sports API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "schoolsports"

var (
	ErrEmpty        = errors.New("token string is empty")
	ErrExpired      = errors.New("token has expired")
	ErrNotYetValid  = errors.New("token is not yet valid")
	ErrNoExpiry     = errors.New("token has no expiry")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrNoUser       = errors.New("user_id claim is missing or zero")
)

// Claims identify the caller. Role is what rmiddleware checks for staff routes.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ValidateJWT returns the claims of tokenString when it is an HS256 token from this
// service, signed with secretKey, carrying an expiry that has not passed.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmpty
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secretKey), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return nil, ErrNoExpiry
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return nil, ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrBadSignature
	default:
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if claims.UserID == 0 {
		return nil, ErrNoUser
	}
	return claims, nil
}

// GenerateJWT signs a token for userID that expires after expiryMinutes.
func GenerateJWT(userID uint, userRole string, secretKey string, expiryMinutes int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
}
