package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"newsletter-backend/internal/domains/newsletter/gateway/youtube"
	"newsletter-backend/internal/domains/newsletter/model"
	"newsletter-backend/internal/domains/newsletter/service"
	"newsletter-backend/internal/shared/middleware"
	"newsletter-backend/internal/shared/response"
)

// =====================================================
// NEWSLETTER HANDLER
// =====================================================

type NewsletterHandler struct {
	newsletterService service.Service
}

func NewNewsletterHandler(newsletterService service.Service) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Generate runs the URL-to-newsletter pipeline
// POST /api/v1/newsletters
func (h *NewsletterHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	// Step 1: Bind request body
	var req model.GenerateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Call service
	resp, err := h.newsletterService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		h.mapGenerateError(c, err)
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, resp)
}

// mapGenerateError maps pipeline failures to HTTP statuses. The wrapped
// message goes back verbatim so the form can show it inline.
func (h *NewsletterHandler) mapGenerateError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.BadRequest(c, err.Error())
		return
	}

	switch {
	case errors.Is(err, youtube.ErrInvalidURL):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNoCaptions),
		errors.Is(err, model.ErrContentTooShort):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, "GENERATION_FAILED", err.Error())
	default:
		// Upstream metadata/transcript/generative failure
		response.BadGateway(c, err.Error())
	}
}

// List returns the caller's generation history, newest first
// GET /api/v1/newsletters
func (h *NewsletterHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.newsletterService.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "failed to list newsletters")
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Get returns one newsletter owned by the caller
// GET /api/v1/newsletters/:id
func (h *NewsletterHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid newsletter id")
		return
	}

	item, err := h.newsletterService.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, model.ErrNewsletterNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to get newsletter")
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Delete removes one newsletter owned by the caller. Missing and
// unowned rows both come back 404, never 403.
// DELETE /api/v1/newsletters/:id
func (h *NewsletterHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid newsletter id")
		return
	}

	deleted, err := h.newsletterService.Delete(c.Request.Context(), userID, id)
	if err != nil {
		response.InternalServerError(c, "failed to delete newsletter")
		return
	}

	if !deleted {
		response.NotFound(c, model.ErrNewsletterNotFound.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Export streams the caller's history as an xlsx workbook
// GET /api/v1/newsletters/export
func (h *NewsletterHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	f, err := h.newsletterService.ExportToExcel(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "failed to export newsletters")
		return
	}

	filename := fmt.Sprintf("newsletters_%s.xlsx", time.Now().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "failed to write excel file")
	}
}
