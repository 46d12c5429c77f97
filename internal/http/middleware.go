package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/multimedia/internal/database"
)

const (
	requestIDHeader = "X-Request-Id"

	requestIDContextKey = "request_id"
	sessionContextKey   = "db_session"
)

var errNoSession = errors.New("no database session in request context")

// SessionOpener hands out request-scoped store sessions.
type SessionOpener interface {
	OpenSession(ctx context.Context) (*database.Session, error)
}

// SessionMiddleware acquires a store session before the handler runs and
// releases it once the handler chain returns, on every exit path including
// panics. Requests that cannot get a session are rejected with 503.
func SessionMiddleware(opener SessionOpener) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := opener.OpenSession(c.Request.Context())
		if err != nil {
			respondUnavailable(c, err, "open session")
			return
		}
		defer func() {
			if err := session.Close(); err != nil {
				slog.Warn("Failed to release database session", "error", err, "request_id", requestID(c))
			}
		}()

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFrom returns the session injected by SessionMiddleware.
func SessionFrom(c *gin.Context) (*database.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*database.Session)
	return session, ok && session != nil
}

// RequestIDMiddleware propagates the caller's X-Request-Id or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}

// AccessLogMiddleware writes one structured log line per request.
func AccessLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "access",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", requestID(c)),
		)
	}
}

// CORSMiddleware allows cross-origin requests from allowedOrigins. A "*"
// entry allows any origin; the request origin is echoed back so that
// credentialed requests keep working. Preflight requests are answered directly.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAny := false
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAny = true
		}
		originSet[strings.TrimRight(origin, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAny || originSet[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			} else {
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
			}
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
