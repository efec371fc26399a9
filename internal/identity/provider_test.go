package identity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type stubRegistry struct {
	values map[string]string
	getErr error
	setErr error
}

func (s *stubRegistry) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	if value, ok := s.values[key]; ok {
		return value, nil
	}
	return "", redis.Nil
}

func (s *stubRegistry) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

func buildTestToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestIdentifyUsesTokenSubject(t *testing.T) {
	svc := NewService(testSecret, "", &stubRegistry{}, zap.NewNop())

	ownerID, err := svc.Identify(context.Background(), buildTestToken(t, "user-123"), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if ownerID != "user-123" {
		t.Fatalf("unexpected owner: %q", ownerID)
	}
}

func TestIdentifyRejectsInvalidToken(t *testing.T) {
	svc := NewService("other-secret", "", &stubRegistry{}, zap.NewNop())

	_, err := svc.Identify(context.Background(), buildTestToken(t, "user-123"), "")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIdentifyProvisionsStableAnonymousIdentity(t *testing.T) {
	registry := &stubRegistry{}
	svc := NewService(testSecret, "", registry, zap.NewNop())

	first, err := svc.Identify(context.Background(), "", "device-abc")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.HasPrefix(first, "anon-") {
		t.Fatalf("expected anonymous prefix, got %q", first)
	}

	second, err := svc.Identify(context.Background(), "", "device-abc")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if second != first {
		t.Fatalf("anonymous identity must be stable: %q vs %q", first, second)
	}
}

func TestIdentifyFailsWithoutTokenOrDevice(t *testing.T) {
	svc := NewService(testSecret, "", &stubRegistry{}, zap.NewNop())

	_, err := svc.Identify(context.Background(), "", "")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIdentifyFailsWhenProvisioningCannotPersist(t *testing.T) {
	svc := NewService(testSecret, "", &stubRegistry{setErr: errors.New("redis down")}, zap.NewNop())

	_, err := svc.Identify(context.Background(), "", "device-abc")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
