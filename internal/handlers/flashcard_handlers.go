package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMaterialFlashcards handles GET /v1/materials/:id/flashcards
func (h *Handlers) GetMaterialFlashcards(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	cards, err := h.Study.Flashcards(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get flashcards")
		return
	}

	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

// ReviewInput is the body of a review request. Correct is a pointer so a
// missing field is rejected instead of read as false.
type ReviewInput struct {
	Correct *bool `json:"correct" binding:"required"`
}

// ReviewFlashcard handles POST /v1/flashcards/:id/review
func (h *Handlers) ReviewFlashcard(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Bind & Validate JSON ---
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Record the answer ---
	result, err := h.Study.Review(c.Request.Context(), uid, c.Param("id"), *input.Correct)
	if err != nil {
		h.respondError(c, err, "Failed to record review")
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusOK, result)
}
