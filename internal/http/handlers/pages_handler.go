// Browser-facing page handlers.
//
// This file serves the rendered HTML surface of the site:
//   - GET /                 landing page
//   - GET /admin/messages   access-gated listing of stored submissions
//
// The admin route sits behind the BasicAuth middleware; by the time
// AdminMessages runs, the caller has already presented valid credentials.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page.
func (h *Handlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// AdminMessages renders all stored contact messages, newest first. There is
// no pagination, filtering, or mutation from this view.
func (h *Handlers) AdminMessages(c *gin.Context) {
	msgs, err := h.contactSvc.ListMessages(c.Request.Context())
	if err != nil {
		failPage(c, http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "admin_messages.html", gin.H{"Messages": msgs})
}
