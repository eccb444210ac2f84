package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/pkg/response"
)

const (
	CtxUserKey     = "currentUser"
	CtxUsernameKey = "username"
)

// TokenResolver turns a bearer token into the user it was issued for. A token
// that does not identify a stored user yields application.ErrInvalidCredentials.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header whose subject
// still exists. Every credential failure is answered with the same 401 so
// callers cannot tell expired, forged and orphaned tokens apart. Store errors
// are 500.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "not authenticated")
			return
		}
		u, err := resolver.Resolve(c.Request.Context(), token)
		if errors.Is(err, application.ErrInvalidCredentials) || (err == nil && u == nil) {
			unauthorized(c, "could not validate credentials")
			return
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "internal error", nil)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUsernameKey, u.Username)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, or nil on unguarded routes.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, http.StatusUnauthorized, msg, nil)
}
