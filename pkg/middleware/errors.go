package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/todo-service/pkg/logger"
)

// ErrorHandler renders the last error attached with c.Error as
// 500 {"message": err.Error()}. Handlers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// Recovery turns a panic into the same 500 {"message"} shape the error handler uses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		logger.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprint(rec)})
	})
}
