package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one key=value line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf(
			"request status=%d method=%s path=%s client_ip=%s user_id=%d latency=%s",
			c.Writer.Status(),
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.GetInt64("user_id"),
			time.Since(start),
		)
	}
}

// Recovery converts panics and unhandled storage faults into a generic
// JSON 500 so internal detail never reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf(
					"panic method=%s path=%s error=%v stack=%s",
					c.Request.Method,
					c.Request.URL.Path,
					recovered,
					string(debug.Stack()),
				)
				response.Msg(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
