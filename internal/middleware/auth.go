package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aryasetya/storefront/internal/common"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
	inHttp "github.com/aryasetya/storefront/internal/common/http"
	"github.com/aryasetya/storefront/internal/config"
	"github.com/aryasetya/storefront/internal/log"
)

func Auth(cfg config.Application) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				logger.Error().Err(inErrors.ErrEmptyAuth).Msg(inErrors.ErrEmptyAuth.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrEmptyAuth.Error(),
				})
				return
			}

			token := strings.TrimPrefix(authorization, "Bearer ")
			userID, err := common.VerifyToken(c, token, cfg.SecretKey)
			if err != nil {
				logger.Error().Err(err).Msg(err.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			c = common.AttachUserIDToContext(c, userID)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}
