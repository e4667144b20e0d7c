package middleware

import (
	"context"
	"strings"

	"RPGLobby/apperr"
	"RPGLobby/services/auth"
	"RPGLobby/utils"

	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"
	tokenKey    = "token"
)

// Verifier turns a bearer token into the identity it was issued to.
type Verifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

// AuthRequired rejects requests without a valid "Authorization: Bearer <jwt>"
// header: 401 when no token is presented, 403 when it does not verify.
func AuthRequired(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		c.Set(identityKey, id)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthRequired.
func CurrentIdentity(c *gin.Context) (auth.Identity, error) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, apperr.Unauthorized("access token required")
	}
	id, ok := v.(auth.Identity)
	if !ok {
		return auth.Identity{}, apperr.Unauthorized("access token required")
	}
	return id, nil
}

// CurrentToken returns the raw token accepted by AuthRequired.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// The token is the second space separated word of the header.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
