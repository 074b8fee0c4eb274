package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedirectMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RedirectMiddleware("/"))
	engine.GET("/admin-dashboard", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		path     string
		code     int
		location string
	}{
		{"/admin-dashbord", http.StatusMovedPermanently, "/admin-dashboard"},
		{"/signin", http.StatusMovedPermanently, "/login"},
		{"/signup", http.StatusMovedPermanently, "/register"},
		{"/admin-dashboard", http.StatusOK, ""},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		engine.ServeHTTP(w, req)

		if w.Code != tc.code {
			t.Errorf("%s: expected status %d, got %d", tc.path, tc.code, w.Code)
		}
		if tc.location != "" && w.Header().Get("Location") != tc.location {
			t.Errorf("%s: expected redirect to %s, got %s", tc.path, tc.location, w.Header().Get("Location"))
		}
	}
}
