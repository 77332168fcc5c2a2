package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Recovery logs a handler panic and hands the request to onPanic.
func Recovery(logger *log.Logger, onPanic func(c *gin.Context, recovered interface{})) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(logger.Writer(), func(c *gin.Context, recovered any) {
		onPanic(c, recovered)
		c.Abort()
	})
}
