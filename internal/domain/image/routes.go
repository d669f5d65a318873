package image

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the image endpoints. uploadGate middleware (if any)
// protects only the write path; listing and metrics stay public.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, uploadGate ...gin.HandlerFunc) {
	images := r.Group("/images")
	{
		images.POST("", append(uploadGate, h.Upload)...)
		images.GET("", h.List)
	}
	r.GET("/metrics", h.Metrics)
}
