package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("third request in the window is rejected", func(t *testing.T) {
		limit, err := RateLimit("2-M")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := gin.New()
		r.Use(limit)
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

		want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
		for i, status := range want {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != status {
				t.Fatalf("request %d: expected %d, got %d", i+1, status, w.Code)
			}
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if _, err := RateLimit("lots"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
