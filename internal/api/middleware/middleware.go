// Package middleware carries the gin middleware stack cmd/ctrlplayd
// wraps around the evaluator, the same recovery-then-tracking shape a
// sibling host in this family always puts in front of a request handler.
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Recovery turns a panic inside a handler into a 500 response instead
// of killing the process. Evaluation panics (a malformed *SyntaxError)
// are already recovered inside eval.EvalSource, so this is a backstop
// for anything that isn't.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RequestTracking stamps every request with a correlation id and logs
// its method, path, and latency once it completes.
func RequestTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		log.Printf("[%s] %s %s %d %s", requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
