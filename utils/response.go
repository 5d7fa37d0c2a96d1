package utils

import "github.com/gin-gonic/gin"

// Response bodies keep the flat {"error": ...} / {"message": ...} shapes
// the clients already depend on.

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func JSONFieldError(c *gin.Context, code int, message string, fields []string) {
	if len(fields) == 0 {
		JSONError(c, code, message)
		return
	}
	c.JSON(code, gin.H{"error": message, "missing_fields": fields})
}
