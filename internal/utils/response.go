package utils

import "github.com/gin-gonic/gin"

// RespondError writes the error envelope {success: false, message}
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// AbortError is RespondError for middleware: it also stops the handler chain
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// RespondSuccess writes the success envelope {success: true, message, data?}
func RespondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
