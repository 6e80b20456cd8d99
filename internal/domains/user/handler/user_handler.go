package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsletter-backend/internal/domains/user"
	"newsletter-backend/internal/shared/middleware"
	"newsletter-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	// Step 1: Bind request body
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Call service
	dto, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if err == user.ErrEmailAlreadyExists {
			response.ErrorResponse(c, http.StatusConflict, "EMAIL_EXISTS", err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, dto)
}

// Login authenticates and issues tokens
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalServerError(c, "login failed")
		return
	}

	// Set the session cookie the page guard reads. The JSON body still
	// carries the tokens for API clients.
	h.setSessionCookie(c, resp.AccessToken)

	response.Success(c, http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, "invalid refresh token")
		return
	}

	h.setSessionCookie(c, resp.AccessToken)

	response.Success(c, http.StatusOK, resp)
}

// Logout clears the session cookie
// POST /api/v1/auth/logout
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// GetProfile returns the authenticated user
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	dto, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, dto)
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	// HttpOnly so page scripts cannot read the token.
	// Secure is left off for local development; a TLS-terminating proxy
	// should set it in production.
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
}
