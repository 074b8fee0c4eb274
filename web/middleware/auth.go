// Package middleware provides the route guards and request filters for the
// enkonix-web server.
package middleware

import (
	"net/http"

	"github.com/enkonix/web/web/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin guards content routes. Anonymous requests are redirected to
// the login page before any page handler runs, so protected content never
// flashes. AJAX callers get a 401 instead of a redirect.
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			deny(c, loginPath)
			return
		}
		c.Next()
	}
}

// RequireAdmin guards the admin dashboard. Access needs an authenticated
// session and the IsAdmin flag on the session user; both conditions must
// hold. Denied users get the same silent redirect as anonymous ones.
func RequireAdmin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil || !user.IsAdmin {
			deny(c, loginPath)
			return
		}
		c.Next()
	}
}

func deny(c *gin.Context, loginPath string) {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"msg":     "login required",
		})
	} else {
		c.Redirect(http.StatusFound, loginPath)
	}
	c.Abort()
}
