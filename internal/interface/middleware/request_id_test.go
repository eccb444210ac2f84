package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(RequestIDMiddleware(), RealIP())
	e.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id")+"|"+c.GetString("real_ip"))
	})

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		id := rr.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("preserved", func(t *testing.T) {
		want := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set(HeaderRequestID, want)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Header().Get(HeaderRequestID))
		assert.Equal(t, want+"|203.0.113.7", rr.Body.String())
	})

	t.Run("garbage replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set(HeaderRequestID, "<script>")
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)
		assert.NotEqual(t, "<script>", rr.Header().Get(HeaderRequestID))
	})
}
