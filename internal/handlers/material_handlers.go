package handlers

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// GetMyMaterials handles GET /v1/materials
func (h *Handlers) GetMyMaterials(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	materials, err := h.Study.Materials(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err, "Failed to get materials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"materials": materials})
}

// GetMaterial handles GET /v1/materials/:id
func (h *Handlers) GetMaterial(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	material, err := h.Study.Material(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get material")
		return
	}

	c.JSON(http.StatusOK, gin.H{"material": material})
}

// DeleteMaterial handles DELETE /v1/materials/:id
func (h *Handlers) DeleteMaterial(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	material, err := h.Study.DeleteMaterial(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to delete material")
		return
	}

	if material.FileURL != nil {
		h.removeUpload(path.Base(*material.FileURL))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted"})
}
