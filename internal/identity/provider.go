// Package identity resolves the owner key every history record must carry:
// the JWT subject when a token is presented, or a provisioned anonymous
// device identity otherwise.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnauthenticated reports that no identity could be established, not
// even an anonymous one. Only history actions surface it; the analysis
// flow proceeds without an identity.
var ErrUnauthenticated = errors.New("no identity could be established")

const devicePrefix = "identity:device:"

// Provider yields a stable owner id for a request.
type Provider interface {
	Identify(ctx context.Context, bearerToken, deviceID string) (string, error)
}

// DeviceRegistry persists anonymous device identities.
type DeviceRegistry interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisDeviceRegistry stores device identities in redis.
type RedisDeviceRegistry struct {
	client *redis.Client
}

// NewRedisDeviceRegistry constructs a redis-backed registry.
func NewRedisDeviceRegistry(client *redis.Client) *RedisDeviceRegistry {
	return &RedisDeviceRegistry{client: client}
}

// Get retrieves a stored identity; redis.Nil signals absence.
func (r *RedisDeviceRegistry) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Set stores an identity without expiry.
func (r *RedisDeviceRegistry) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Service validates bearer tokens and provisions anonymous identities.
type Service struct {
	secret   string
	audience string
	devices  DeviceRegistry
	logger   *zap.Logger
}

// NewService constructs the identity service.
func NewService(secret, audience string, devices DeviceRegistry, logger *zap.Logger) *Service {
	return &Service{
		secret:   strings.TrimSpace(secret),
		audience: strings.TrimSpace(audience),
		devices:  devices,
		logger:   logger.Named("identity"),
	}
}

// Identify resolves an owner id. A presented token must be valid; with no
// token a device id is provisioned an anonymous identity on first sight.
func (s *Service) Identify(ctx context.Context, bearerToken, deviceID string) (string, error) {
	if bearerToken != "" {
		subject, err := s.verifyToken(bearerToken)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		return subject, nil
	}

	if deviceID == "" {
		return "", ErrUnauthenticated
	}
	return s.provisionAnonymous(ctx, deviceID)
}

func (s *Service) verifyToken(tokenString string) (string, error) {
	if s.secret == "" {
		return "", errors.New("missing JWT secret")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	if s.audience != "" && !containsAudience(claims.Audience, s.audience) {
		return "", errors.New("invalid audience")
	}
	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}
	return claims.Subject, nil
}

func (s *Service) provisionAnonymous(ctx context.Context, deviceID string) (string, error) {
	key := devicePrefix + deviceID
	ownerID, err := s.devices.Get(ctx, key)
	if err == nil && ownerID != "" {
		return ownerID, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	ownerID = "anon-" + uuid.NewString()
	if err := s.devices.Set(ctx, key, ownerID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	s.logger.Info("provisioned anonymous identity", zap.String("device_id", deviceID))
	return ownerID, nil
}

func containsAudience(claims jwt.ClaimStrings, expected string) bool {
	for _, aud := range claims {
		if aud == expected {
			return true
		}
	}
	return false
}
