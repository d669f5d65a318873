package image

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"picvault/internal/pkg/response"
)

// Handler exposes the upload, listing, and metrics endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// listedImage is the public listing row; content type stays internal.
type listedImage struct {
	ID        string     `json:"id"`
	PublicURL string     `json:"publicUrl"`
	Filename  string     `json:"filename"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt"`
	Size      *int64     `json:"size"`
}

// Upload accepts a multipart form with a "file" part and an optional
// "expiresIn" field ("24h" | "7d" | "permanent", default "permanent").
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided.")
		return
	}

	option := ExpiryOption(c.PostForm("expiresIn"))

	result, err := h.service.Upload(c.Request.Context(), fileHeader, option)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "File is empty.")
		case errors.Is(err, ErrUnsupportedType):
			response.Error(c, http.StatusBadRequest, "Unsupported file type.")
		case errors.Is(err, ErrInvalidExpiry):
			response.Error(c, http.StatusBadRequest, "Invalid expiry option.")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "Files are limited to 10MB.")
		case errors.Is(err, ErrStorageUnconfigured):
			response.Error(c, http.StatusInternalServerError, "Object storage is not configured.")
		case errors.Is(err, ErrStorageWrite):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Upload failed", err.Error())
		case errors.Is(err, ErrMetadataWrite):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Metadata save failed", err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Upload failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// List returns up to RecentLimit newest uploads. A misconfigured or failing
// metadata store yields an empty list so the page still renders.
func (h *Handler) List(c *gin.Context) {
	images, err := h.service.Recent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"images": []listedImage{},
			"error":  err.Error(),
		})
		return
	}

	items := make([]listedImage, 0, len(images))
	for _, img := range images {
		items = append(items, listedImage{
			ID:        img.ID,
			PublicURL: img.PublicURL,
			Filename:  img.Filename,
			CreatedAt: img.CreatedAt,
			ExpiresAt: img.ExpiresAt,
			Size:      img.Size,
		})
	}
	c.JSON(http.StatusOK, gin.H{"images": items})
}

// Metrics returns the aggregate dashboard numbers. Always 200; failures
// degrade to zeroed values inside the service.
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Metrics(c.Request.Context()))
}
