package locale

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type stubStore struct {
	value   string
	getErr  error
	setErr  error
	setKeys []string
	setVals []string
}

func (s *stubStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.value, nil
}

func (s *stubStore) Set(ctx context.Context, key, value string) error {
	s.setKeys = append(s.setKeys, key)
	s.setVals = append(s.setVals, value)
	return s.setErr
}

func TestPreferenceLoadUsesStoredValue(t *testing.T) {
	p := NewPreference(&stubStore{value: "si"}, zap.NewNop())
	p.Load(context.Background())
	if p.Current() != Sinhala {
		t.Fatalf("expected sinhala, got %s", p.Current())
	}
}

func TestPreferenceLoadDefaultsOnAbsence(t *testing.T) {
	p := NewPreference(&stubStore{getErr: redis.Nil}, zap.NewNop())
	p.Load(context.Background())
	if p.Current() != DefaultLanguage {
		t.Fatalf("expected default language, got %s", p.Current())
	}
}

func TestPreferenceLoadDefaultsOnStoreFailure(t *testing.T) {
	p := NewPreference(&stubStore{getErr: errors.New("boom")}, zap.NewNop())
	p.Load(context.Background())
	if p.Current() != DefaultLanguage {
		t.Fatalf("expected default language, got %s", p.Current())
	}
}

func TestPreferenceLoadIgnoresUnsupportedValue(t *testing.T) {
	p := NewPreference(&stubStore{value: "fr"}, zap.NewNop())
	p.Load(context.Background())
	if p.Current() != DefaultLanguage {
		t.Fatalf("expected default language, got %s", p.Current())
	}
}

func TestPreferenceSetWritesThrough(t *testing.T) {
	store := &stubStore{}
	p := NewPreference(store, zap.NewNop())
	p.Set(context.Background(), Sinhala)

	if p.Current() != Sinhala {
		t.Fatalf("expected sinhala active, got %s", p.Current())
	}
	if len(store.setKeys) != 1 || store.setKeys[0] != preferenceKey || store.setVals[0] != "si" {
		t.Fatalf("unexpected write: keys=%v vals=%v", store.setKeys, store.setVals)
	}
}

func TestPreferenceSetSurvivesPersistenceFailure(t *testing.T) {
	p := NewPreference(&stubStore{setErr: errors.New("redis down")}, zap.NewNop())
	p.Set(context.Background(), Sinhala)
	if p.Current() != Sinhala {
		t.Fatalf("in-memory value must change even when the write fails, got %s", p.Current())
	}
}
