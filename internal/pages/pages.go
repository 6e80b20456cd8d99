// Package pages serves the server-rendered HTML shell. The pages are
// thin: they render templates that call the JSON API from the browser.
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsletter-backend/internal/shared/middleware"
	"newsletter-backend/pkg/jwt"
)

// =====================================================
// PAGE HANDLER
// =====================================================

type Handler struct {
	jwtManager *jwt.Manager
}

func NewHandler(jwtManager *jwt.Manager) *Handler {
	return &Handler{jwtManager: jwtManager}
}

// currentEmail resolves the signed-in user's email from the session
// cookie, empty when the visitor is anonymous.
func (h *Handler) currentEmail(c *gin.Context) string {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil {
		return ""
	}

	claims, err := h.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return ""
	}

	return claims.Email
}

// Home renders the landing page
// GET /
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "YouTube to Newsletter",
		"Email": h.currentEmail(c),
	})
}

// Login renders the sign-in form
// GET /login
func (h *Handler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":    "Sign In",
		"Redirect": c.Query("redirect"),
	})
}

// Signup renders the registration form
// GET /signup
func (h *Handler) Signup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title": "Create Account",
	})
}

// Dashboard renders the generation form
// GET /dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Generate Newsletter",
		"Email": h.currentEmail(c),
	})
}

// History renders the newsletter history list
// GET /history
func (h *Handler) History(c *gin.Context) {
	c.HTML(http.StatusOK, "history.html", gin.H{
		"Title": "Newsletter History",
		"Email": h.currentEmail(c),
	})
}
