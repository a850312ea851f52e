package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateFlashcards handles POST /v1/materials/:id/generate
// Free accounts pay one credit per call; 402 when none are left.
func (h *Handlers) GenerateFlashcards(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Call the AI Service ---
	result, err := h.Study.Generate(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to generate flashcards")
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusCreated, result)
}
