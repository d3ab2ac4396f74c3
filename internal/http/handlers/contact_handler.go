// Contact HTTP handler.
//
// This file exposes the submission endpoint of the contact form:
//   - POST /contact
//
// The handler is transport-thin: it binds the JSON payload, delegates to the
// contact service, and translates service errors into the JSON envelope. The
// response contract is fixed: 400 for missing fields, 500 for persistence or
// notification failures (with the underlying error text in the message), and
// 200 with a confirmation otherwise.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-portfolio-backend/internal/services"
)

// SubmitContactRequest is the JSON payload for a contact-form submission.
// All three fields are required to be non-empty; emptiness is checked by the
// service so that absent and empty fields produce the same client error.
type SubmitContactRequest struct {
	Name    string `json:"name"    example:"Ana"`
	Email   string `json:"email"   example:"ana@x.com"`
	Message string `json:"message" example:"Hi"`
}

// SubmitContact handles POST /contact.
//
// Responses:
//   - 200 {"status":"success","message":"Message sent successfully!"}
//   - 400 {"status":"error","message":"All fields are required"}
//   - 500 {"status":"error","message":"Error: <underlying error>"}
//
// A 500 from the notification step means the message was stored but the
// operator email could not be delivered; the record is not retracted.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.contactSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, "All fields are required")
			return
		}
		fail(c, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	ok(c, "Message sent successfully!")
}
