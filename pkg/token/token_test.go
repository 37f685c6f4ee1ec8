package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "coach", secret, 5)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "coach", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateRejects(t *testing.T) {
	expired, err := GenerateJWT(1, "admin", secret, -1)
	require.NoError(t, err)
	_, err = ValidateJWT(expired, secret)
	assert.ErrorIs(t, err, ErrExpired)

	valid, err := GenerateJWT(1, "admin", secret, 5)
	require.NoError(t, err)
	_, err = ValidateJWT(valid, "other-secret")
	assert.ErrorIs(t, err, ErrBadSignature)

	now := time.Now()
	noExpiry := sign(t, jwt.SigningMethodHS256, &Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now), Issuer: issuer},
	})
	_, err = ValidateJWT(noExpiry, secret)
	assert.ErrorIs(t, err, ErrNoExpiry)

	live := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)), Issuer: issuer}
	_, err = ValidateJWT(sign(t, jwt.SigningMethodHS256, &Claims{RegisteredClaims: live}), secret)
	assert.ErrorIs(t, err, ErrNoUser)

	_, err = ValidateJWT(sign(t, jwt.SigningMethodHS512, &Claims{UserID: 1, RegisteredClaims: live}), secret)
	assert.Error(t, err, "only HS256 is accepted")

	foreign := live
	foreign.Issuer = "elsewhere"
	_, err = ValidateJWT(sign(t, jwt.SigningMethodHS256, &Claims{UserID: 1, RegisteredClaims: foreign}), secret)
	assert.Error(t, err)

	_, err = ValidateJWT("", secret)
	assert.ErrorIs(t, err, ErrEmpty)
}
