package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger replaces gin's stdout logger with one logrus line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.WithContext(c.Request.Context()).WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("[http] request")
		case status >= 400:
			entry.Warn("[http] request")
		default:
			entry.Info("[http] request")
		}
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(500)
	})
}
