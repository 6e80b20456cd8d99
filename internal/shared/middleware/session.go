package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"newsletter-backend/pkg/jwt"
)

// =====================================================
// PAGE ROUTING GUARD
// =====================================================
// Browser-facing pages redirect instead of returning 401 JSON.
// Protected pages send anonymous visitors to the login page with a
// redirect parameter carrying the original path; auth pages send
// signed-in visitors to the dashboard.

// RequireSession guards protected pages.
// Unauthenticated visitors are redirected to /login?redirect=<path>.
func RequireSession(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasValidSession(c, manager) {
			loginURL := "/login?redirect=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated guards the login/signup pages.
// Signed-in visitors are sent straight to the dashboard.
func RedirectIfAuthenticated(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hasValidSession(c, manager) {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasValidSession(c *gin.Context, manager *jwt.Manager) bool {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return false
	}
	_, err = manager.ValidateAccessToken(cookie)
	return err == nil
}
