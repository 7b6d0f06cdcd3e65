package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorHandler handles global errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, err := range c.Errors {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err.Err)
		}
	}
}
