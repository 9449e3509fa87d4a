package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipecatalog/backend/internal/service"
)

// maxImageSize caps recipe image uploads.
const maxImageSize = 5 << 20

// ImageHandler handles recipe image uploads
type ImageHandler struct {
	imageService service.IImageService
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageService service.IImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.UploadImage)
}

// UploadImage stores the multipart "image" file and returns its public URL.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}
	if header.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Image exceeds 5MB"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is unreadable"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is unreadable"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, http.DetectContentType(data))
	if errors.Is(err, service.ErrUnsupportedImage) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imageURL": url})
}
