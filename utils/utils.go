package utils

import (
	"log/slog"
	"time"

	"RPGLobby/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Logger logs one line per request and tags it with a request id, reusing
// the caller's X-Request-ID when present.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		log.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(startTime)),
		)
	}
}

// ErrorHandler turns the last error a handler attached with c.Error into the
// response. Unexpected failures are logged and answered with a generic 500.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperr.Status(err)
		if apperr.Code(err) == apperr.CodeInternal {
			log.ErrorContext(c.Request.Context(), "request failed",
				slog.String("request_id", c.GetString("request_id")),
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err),
			)
		}
		c.AbortWithStatusJSON(status, gin.H{"error": apperr.PublicMessage(err)})
	}
}

// Fail records err for ErrorHandler and stops the handler chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
