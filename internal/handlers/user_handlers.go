package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMyProfile is the handler for GET /v1/profile/me
func (h *Handlers) GetMyProfile(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Query Database ---
	profile, err := h.Accounts.Profile(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err, "Failed to get profile")
		return
	}

	p, found := profile.Get()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// GetMySubscription is the handler for GET /v1/subscription
// Users without a billing record get {"subscription": null}.
func (h *Handlers) GetMySubscription(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	sub, err := h.Accounts.Subscription(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err, "Failed to get subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}
