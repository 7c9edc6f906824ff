package auth

import "github.com/labstack/echo/v4"

const identityKey = "identity"

// Identity is the resolved caller of a request.
type Identity struct {
	UserID   uint
	Username string
	Staff    bool
}

func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity stored on the context by the auth
// middleware. The second value is false for anonymous requests.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
