package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type contextKey string

const ownerIDKey contextKey = "historyOwnerID"

// DeviceHeader carries the client's stable device token for anonymous
// identity provisioning.
const DeviceHeader = "X-Device-Id"

// OwnerID retrieves the resolved owner from context.
func OwnerID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if value, ok := ctx.Value(ownerIDKey).(string); ok && value != "" {
		return value, true
	}
	return "", false
}

// Middleware resolves the request's owner identity into the context. It
// never aborts: analysis works without an identity, and the handlers that
// do require one reject the request themselves.
func Middleware(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.Request.Header.Get("Authorization"))
		if err != nil {
			token = ""
		}
		deviceID := strings.TrimSpace(c.Request.Header.Get(DeviceHeader))

		ownerID, err := provider.Identify(c.Request.Context(), token, deviceID)
		if err == nil && ownerID != "" {
			ctx := context.WithValue(c.Request.Context(), ownerIDKey, ownerID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header required")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("token missing")
	}
	return token, nil
}
