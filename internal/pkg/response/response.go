package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body the API contract uses for
// client-correctable failures.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithDetails adds the backend failure reason for 5xx-class responses.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}
