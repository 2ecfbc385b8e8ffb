package routes

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/config"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestApp(t *testing.T, rateLimit string) *app.App {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{Addr: ":0", RateLimit: rateLimit},
		App:     config.AppConfig{Timezone: "UTC", IDStrategy: config.IDStrategyTimestamp, RecentFilesLimit: 8},
		Storage: config.StorageConfig{Backend: config.BackendMemory},
		Notify:  config.NotifyConfig{DedupSize: 16},
	}
	a, err := app.New(context.Background(), cfg, app.Options{Out: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(newTestApp(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		target string
		status int
	}{
		{"/v1/ping", http.StatusOK},
		{"/v1/orders", http.StatusOK},
		{"/v1/orders/pending-delivery", http.StatusOK},
		{"/v1/orders/missing", http.StatusNotFound},
		{"/v1/history", http.StatusOK},
		{"/v1/contacts", http.StatusOK},
		{"/v1/trainings", http.StatusOK},
		{"/v1/letters", http.StatusOK},
		{"/v1/tasks", http.StatusOK},
		{"/v1/products", http.StatusOK},
		{"/v1/taxonomy", http.StatusOK},
		{"/v1/machine-types", http.StatusOK},
		{"/v1/reference", http.StatusOK},
		{"/v1/dashboard", http.StatusOK},
		{"/v1/reports?period=monthly", http.StatusOK},
		{"/v1/reports?period=yearly", http.StatusBadRequest},
		{"/v1/exports/contacts.csv", http.StatusOK},
		{"/v1/notifications/ws", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			if w := get(r, tc.target); w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}

	t.Run("reminder check", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/reminders/check", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit applies to every route", func(t *testing.T) {
		r, err := NewRouter(newTestApp(t, "1-M"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w := get(r, "/v1/ping"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := get(r, "/v1/ping"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		if _, err := NewRouter(newTestApp(t, "often")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
