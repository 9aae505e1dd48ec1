package httpx

import (
	"context"

	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

type sessionKey struct{}

func withSession(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, c)
	return slogx.With(ctx, "user_id", c.Subject)
}

// ClaimsFromContext returns the verified token claims set by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(sessionKey{}).(jwtx.Claims)
	return c, ok
}

// UserIDFromContext returns the subject of the verified session token.
func UserIDFromContext(ctx context.Context) (string, bool) {
	c, ok := ClaimsFromContext(ctx)
	return c.Subject, ok && c.Subject != ""
}
