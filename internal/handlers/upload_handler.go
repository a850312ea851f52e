package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/01moynul/studybuddy-golang/internal/study"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadMaterial handles POST /v1/materials
// The file is saved under UploadDir and becomes a study material.
func (h *Handlers) UploadMaterial(c *gin.Context) {
	// 1. --- Get User ID ---
	uid, ok := userID(c)
	if !ok {
		return
	}

	// 2. --- Get the file from the request ---
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if h.MaxUploadBytes > 0 && file.Size > h.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File is larger than %d bytes", h.MaxUploadBytes)})
		return
	}
	if !study.SupportedFileType(file.Filename) {
		h.respondError(c, study.ErrUnsupportedFile, "")
		return
	}

	// 3. --- Read the content ---
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	// 4. --- Save the file (uuid + extension) ---
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		h.respondError(c, err, "Failed to save file")
		return
	}
	newFilename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	savePath := filepath.Join(h.UploadDir, newFilename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		h.respondError(c, err, "Failed to save file")
		return
	}

	// 5. --- Store the material ---
	result, err := h.Study.CreateMaterial(c.Request.Context(), uid, study.NewMaterial{
		Title:    c.PostForm("title"),
		FileName: file.Filename,
		FileURL:  fmt.Sprintf("%s/uploads/%s", strings.TrimRight(h.BaseURL, "/"), newFilename),
		Data:     data,
	})
	if err != nil {
		h.removeUpload(newFilename)
		h.respondError(c, err, "Failed to create study material")
		return
	}

	// 6. --- Send Success Response ---
	c.JSON(http.StatusCreated, result)
}

// removeUpload deletes a stored file; failures are only logged.
func (h *Handlers) removeUpload(name string) {
	if name == "" || name == "." || name == "/" {
		return
	}
	if err := os.Remove(filepath.Join(h.UploadDir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		h.Log.Warn("failed to remove upload", zap.String("file", name), zap.Error(err))
	}
}
