package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONInvalid renders a business rejection (validation / availability /
// capacity) with its structured detail so the frontend can highlight fields.
func JSONInvalid(c *gin.Context, code int, detail interface{}) {
	c.JSON(code, gin.H{"success": false, "result": detail})
}
