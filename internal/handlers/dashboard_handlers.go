package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the dashboard view for the logged-in user
// GET /v1/dashboard
//
// A failed read does not fail the request: the body is still 200 and
// carries an "alert" object for the client to show.
func (h *Handlers) GetDashboard(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Build the view ---
	view, err := h.Dashboard.Load(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err, "Failed to load dashboard")
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, view)
}
