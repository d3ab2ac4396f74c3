// Package handlers provides HTTP handler implementations for the site.
//
// This file defines the response utilities shared by all endpoints. The
// contact endpoint speaks a small JSON envelope; the browser-facing routes
// (landing page, admin listing, unmatched paths) render HTML, including
// dedicated 404 and 500 pages.
//
// Conventions:
//   - The JSON envelope is always {"status": "success"|"error", "message": …}.
//   - fail() centralizes error formatting and ensures 5xx responses are
//     logged with request context.
//   - failPage() renders the HTML error pages for browser routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-portfolio-backend/internal/http/middleware"
)

// StatusResponse is the JSON envelope returned by the contact endpoint.
//
// Fields:
//   - Status: "success" or "error".
//   - Message: human-readable confirmation or error description. On
//     persistence and notification failures this deliberately carries the
//     underlying error text.
type StatusResponse struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Message sent successfully!"`
}

// fail aborts the request with the JSON error envelope and logs server-side
// errors with the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, StatusResponse{Status: "error", Message: msg})
}

// Fail is the exported variant of fail(), for use by router-level fallbacks.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes the JSON success envelope.
func ok(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: msg})
}

// failPage renders the dedicated HTML error page for browser-facing routes.
// Only 404 and 500 have pages; anything else falls back to the 500 page.
func failPage(c *gin.Context, status int) {
	page := "500.html"
	if status == http.StatusNotFound {
		page = "404.html"
	}
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().Int("status", status).Msg("page error")
	}
	c.HTML(status, page, nil)
	c.Abort()
}

// FailPage is the exported variant of failPage(), for router-level fallbacks.
func FailPage(c *gin.Context, status int) { failPage(c, status) }
