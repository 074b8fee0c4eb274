package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enkonix/web/database/model"
	"github.com/enkonix/web/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	engine.Use(sessions.Sessions("enkonix-web", store))

	// Test-only login endpoint so guard checks can obtain a session cookie.
	engine.POST("/test-login", func(c *gin.Context) {
		user := &model.User{Id: 1, Email: "user@x.com"}
		if c.Query("admin") == "1" {
			user.IsAdmin = true
		}
		if err := session.SetLoginUser(c, user); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	protected := engine.Group("/", RequireLogin("/login"))
	protected.GET("/about", func(c *gin.Context) {
		c.String(http.StatusOK, "about content")
	})

	admin := engine.Group("/admin-dashboard", RequireAdmin("/login"))
	admin.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "admin content")
	})

	return engine
}

func loginCookies(t *testing.T, engine *gin.Engine, admin bool) []*http.Cookie {
	t.Helper()
	path := "/test-login"
	if admin {
		path += "?admin=1"
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("test login failed with status %d", w.Code)
	}
	return w.Result().Cookies()
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	engine := guardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "about content", "guarded handler must not run")
}

func TestRequireLoginAjaxGets401(t *testing.T) {
	engine := guardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login required")
}

func TestRequireLoginAllowsSession(t *testing.T) {
	engine := guardedRouter()
	cookies := loginCookies(t, engine, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "about content")
}

func TestRequireAdminDeniesAnonymous(t *testing.T) {
	engine := guardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAdminDeniesRegularUser(t *testing.T) {
	engine := guardedRouter()
	cookies := loginCookies(t, engine, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "admin content")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	engine := guardedRouter()
	cookies := loginCookies(t, engine, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin content")
}
