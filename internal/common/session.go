package common

import (
	"context"
)

// SessionCookieName is the cookie carrying the opaque cart-session identifier.
// The identifier is independent of any authenticated user.
const SessionCookieName = "storefront_session"

type sessionId struct{}

func SessionIDFromContext(c context.Context) string {
	id, ok := c.Value(sessionId{}).(string)
	if !ok {
		return ""
	}
	return id
}

func AttachSessionIDToContext(c context.Context, id string) context.Context {
	return context.WithValue(c, sessionId{}, id)
}
