package middleware

import (
	"context"
	"fmt"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/labstack/echo/v4"
)

// Authenticator resolves a bearer access token to a caller identity.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (auth.Identity, error)
}

// Authenticate attaches the caller identity to the context when an
// Authorization header is present. Requests without one continue as
// anonymous; a header that does not carry a valid token is rejected.
func Authenticate(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := auth.ExtractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return fmt.Errorf("%w: malformed authorization header", auth.ErrInvalidToken)
			}
			if token == "" {
				return next(c)
			}

			id, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			auth.SetIdentity(c, id)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := auth.IdentityFrom(c); !ok {
			return auth.ErrMissingToken
		}
		return next(c)
	}
}

// RequireAuthFor rejects anonymous requests using one of the given methods
// and lets the rest through.
func RequireAuthFor(methods ...string) echo.MiddlewareFunc {
	guarded := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		guarded[m] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := guarded[c.Request().Method]; !ok {
				return next(c)
			}
			return RequireAuth(next)(c)
		}
	}
}
