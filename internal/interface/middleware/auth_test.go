package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/domain/entity"
)

type fakeResolver struct {
	tokens map[string]*entity.User
	err    error
}

func (f fakeResolver) Resolve(_ context.Context, token string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.tokens[token]; ok {
		return u, nil
	}
	return nil, application.ErrInvalidCredentials
}

func newAuthEngine(r TokenResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(RequestIDMiddleware())
	e.GET("/me", Auth(r), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	return e
}

func TestAuth_ValidBearer(t *testing.T) {
	e := newAuthEngine(fakeResolver{tokens: map[string]*entity.User{"good": {Username: "u1"}}})

	for _, header := range []string{"Bearer good", "bearer good", "BEARER   good "} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		req.Header.Set("Authorization", header)
		e.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, header)
		assert.JSONEq(t, `{"username":"u1"}`, rr.Body.String())
	}
}

func TestAuth_Rejects(t *testing.T) {
	e := newAuthEngine(fakeResolver{tokens: map[string]*entity.User{"good": {Username: "u1"}}})

	cases := map[string]string{
		"missing header": "",
		"basic scheme":   "Basic dTE6cDE=",
		"empty token":    "Bearer ",
		"bare token":     "good",
		"unknown token":  "Bearer forged",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			e.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["request_id"])
		})
	}
}

func TestAuth_StoreFailureIsServerError(t *testing.T) {
	e := newAuthEngine(fakeResolver{err: errors.New("connection refused")})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer good")
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestCurrentUser_Unguarded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}
