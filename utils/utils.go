package utils

import (
	"net/http"
	"time"

	"Gamestore/services/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

// RequestLogger logs information about each request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start time
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// Process request
		c.Next()

		statusCode := c.Writer.Status()
		entry := Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     statusCode,
			"latency":    time.Since(startTime).String(),
			"client_ip":  c.ClientIP(),
		})
		switch {
		case statusCode >= http.StatusInternalServerError:
			entry.Error("request failed")
		case statusCode >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// Fail records err on the context for ErrorHandler and stops the chain.
// generic is the message shown to clients when err is internal
func Fail(c *gin.Context, err error, generic string) {
	_ = c.Error(err).SetMeta(generic)
	c.Abort()
}

// ErrorHandler handles global errors: the last error recorded with Fail is
// turned into a {"message": ...} response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		last := c.Errors.Last()
		status, message := classify(last.Err)
		if status == http.StatusInternalServerError {
			if generic, ok := last.Meta.(string); ok && generic != "" {
				message = generic
			}
			Log.WithError(last.Err).
				WithField("request_id", c.GetString(requestIDKey)).
				WithField("path", c.Request.URL.Path).
				Error(message)
		}
		c.JSON(status, gin.H{"message": message})
	}
}

func classify(err error) (int, string) {
	kind, message := store.KindOf(err)
	switch kind {
	case store.KindValidation:
		return http.StatusBadRequest, message
	case store.KindUnauthorized:
		return http.StatusUnauthorized, message
	case store.KindNotFound:
		return http.StatusNotFound, message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
