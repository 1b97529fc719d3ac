package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aryasetya/storefront/internal/common"
	"github.com/aryasetya/storefront/internal/log"
)

// Session attaches the opaque cart-session identifier to the request context,
// issuing a new one as a cookie when the browser has none yet. The identifier
// only correlates anonymous cart state; it carries no user identity.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).
			With().
			Str(log.KeyTag, "middleware Session").
			Logger()

		var sessionID string
		cookie, err := r.Cookie(common.SessionCookieName)
		if err != nil || cookie.Value == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     common.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			logger.Debug().Str(log.KeySessionID, sessionID).Msg("issued new session cookie")
		} else {
			sessionID = cookie.Value
		}

		logger = logger.With().Str(log.KeySessionID, sessionID).Logger()
		c := common.AttachSessionIDToContext(r.Context(), sessionID)
		c = logger.WithContext(c)
		next.ServeHTTP(w, r.WithContext(c))
	})
}
