package common

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryasetya/storefront/internal/common/constants"
)

func signToken(t *testing.T, subject string, secretKey string, lifetime time.Duration) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{constants.AudienceUser},
			Issuer:    constants.AppStorefront,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	)
	signed, err := token.SignedString([]byte(secretKey))
	require.NoError(t, err)
	return signed
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	c := context.Background()
	userID := uuid.New()
	secretKey := "secret"

	signed := signToken(t, userID.String(), secretKey, 30*time.Minute)

	id, err := VerifyToken(c, signed, secretKey)
	require.NoError(t, err)
	assert.EqualValues(t, userID, id)
}

func TestVerifyTokenWrongKey(t *testing.T) {
	c := context.Background()

	signed := signToken(t, uuid.NewString(), "secret", 30*time.Minute)

	_, err := VerifyToken(c, signed, "other-secret")
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	c := context.Background()

	signed := signToken(t, uuid.NewString(), "secret", -time.Minute)

	_, err := VerifyToken(c, signed, "secret")
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	c := context.Background()

	_, err := VerifyToken(c, "not-a-token", "secret")
	assert.Error(t, err)
}
