package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/vaxicare-api/internal/storage"
)

// UploadImage stores an uploaded file in the images bucket under the folder
// for the given product type and returns the bare stored filename, which is
// what product/article documents keep.
func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file form field is required", "code": "invalid-argument"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	folder := storage.FolderForType(c.Param("folder"))
	stored, err := h.Blobs.Upload(context.TODO(), folder, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"fileName": stored,
		"folder":   folder,
		"url":      h.Images.ResolveImageURL(context.TODO(), stored, c.Param("folder")),
	})
}

// ServeImage streams a stored blob. The public marketing site hot-links these
// URLs, so missing blobs are a plain 404 rather than a fallback here; the
// fallback substitution happens at resolution time.
func (h *Handler) ServeImage(c *gin.Context) {
	name := c.Param("folder") + "/" + c.Param("name")

	c.Header("Cache-Control", "public, max-age=86400")
	if err := h.Blobs.Stream(context.TODO(), name, c.Writer); err != nil {
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
}
