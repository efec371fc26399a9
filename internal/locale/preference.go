package locale

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// preferenceKey is the single key the language preference occupies in the
// external key-value store.
const preferenceKey = "user_language_preference"

// PreferenceStore abstracts the key-value store holding the language
// preference.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisPreferenceStore is a concrete store backed by go-redis.
type RedisPreferenceStore struct {
	client *redis.Client
}

// NewRedisPreferenceStore constructs a redis-backed preference store.
func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client}
}

// Get retrieves a stored value; redis.Nil signals absence.
func (s *RedisPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

// Set writes a value without expiry.
func (s *RedisPreferenceStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Preference is the process-wide holder for the active language. It is read
// from the store once at startup and written through on every change; the
// in-memory value is authoritative for the process lifetime.
type Preference struct {
	mu      sync.RWMutex
	current Language
	store   PreferenceStore
	logger  *zap.Logger
}

// NewPreference constructs the holder with the default language active.
func NewPreference(store PreferenceStore, logger *zap.Logger) *Preference {
	return &Preference{
		current: DefaultLanguage,
		store:   store,
		logger:  logger.Named("locale_preference"),
	}
}

// Load reads the persisted preference. Absence or a store failure leaves
// the default language active; a failure is logged, never surfaced.
func (p *Preference) Load(ctx context.Context) {
	value, err := p.store.Get(ctx, preferenceKey)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn("failed to load language preference", zap.Error(err))
		}
		return
	}
	if !Supported(value) {
		p.logger.Warn("ignoring unsupported stored language", zap.String("value", value))
		return
	}
	p.mu.Lock()
	p.current = Language(value)
	p.mu.Unlock()
}

// Set activates a language and writes it through to the store. The write is
// best effort: the in-memory value changes even when persistence fails.
func (p *Preference) Set(ctx context.Context, lang Language) {
	p.mu.Lock()
	p.current = lang
	p.mu.Unlock()

	if err := p.store.Set(ctx, preferenceKey, string(lang)); err != nil {
		p.logger.Warn("failed to persist language preference", zap.Error(err))
	}
}

// Current returns the active language.
func (p *Preference) Current() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}
