package common

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aryasetya/storefront/internal/common/constants"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
	"github.com/aryasetya/storefront/internal/log"
)

type userId struct{}

func UserIDFromContext(c context.Context) (uuid.UUID, error) {
	id, ok := c.Value(userId{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, inErrors.ErrEmptyAuth
	}
	return id, nil
}

func AttachUserIDToContext(c context.Context, id uuid.UUID) context.Context {
	return context.WithValue(c, userId{}, id)
}

// VerifyToken parses and validates a signed login token and returns the user id
// carried in its subject claim.
func VerifyToken(c context.Context, token string, secretKey string) (uuid.UUID, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	claims := jwt.RegisteredClaims{}

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	jwtToken, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
		jwt.WithAudience(constants.AudienceUser),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppStorefront),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing with claims with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	if !jwtToken.Valid {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return uuid.Nil, inErrors.ErrTokenInvalid
	}

	logger = logger.With().Str(log.KeyProcess, "parsing subject").Logger()
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		err = fmt.Errorf("failed parsing subject=%s with error=%w", claims.Subject, err)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, inErrors.ErrTokenInvalid
	}

	return id, nil
}
