package classifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestClassifyDecodesPrediction(t *testing.T) {
	var gotBody classifyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"disease":     "Early_blight",
			"displayName": "Early Blight",
			"confidence":  88.4,
			"severity":    "High",
			"description": "provisional text",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())
	image := []byte("leaf-bytes")
	result, err := client.Classify(context.Background(), image)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if gotBody.Image != base64.StdEncoding.EncodeToString(image) {
		t.Fatalf("unexpected wire payload: %q", gotBody.Image)
	}
	if result.Disease != EarlyBlight {
		t.Fatalf("unexpected disease: %s", result.Disease)
	}
	if result.Confidence != 88 {
		t.Fatalf("unexpected confidence: %d", result.Confidence)
	}
	if result.Severity != SeverityHigh {
		t.Fatalf("unexpected severity: %s", result.Severity)
	}
}

func TestClassifyReturnsTransportErrorOnNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model unavailable"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())
	_, err := client.Classify(context.Background(), []byte("leaf"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if terr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", terr.StatusCode)
	}
	if terr.Message != "model unavailable" {
		t.Fatalf("unexpected message: %q", terr.Message)
	}
}

func TestClassifyNormalizesSeverityAndConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"disease":    "healthy",
			"confidence": 140.0,
			"severity":   "Extreme",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())
	result, err := client.Classify(context.Background(), []byte("leaf"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if result.Confidence != 100 {
		t.Fatalf("expected clamped confidence, got %d", result.Confidence)
	}
	if result.Severity != SeverityNotApplicable {
		t.Fatalf("expected N/A severity, got %s", result.Severity)
	}
}

func TestClampConfidenceRoundsAndClamps(t *testing.T) {
	cases := map[float64]int{
		-3.0:  0,
		0.0:   0,
		88.4:  88,
		97.6:  98,
		99.5:  100,
		140.0: 100,
	}
	for input, want := range cases {
		if got := clampConfidence(input); got != want {
			t.Fatalf("clampConfidence(%v) = %d, want %d", input, got, want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"Low":    SeverityLow,
		"Medium": SeverityMedium,
		"High":   SeverityHigh,
		"N/A":    SeverityNotApplicable,
		"":       SeverityNotApplicable,
		"wild":   SeverityNotApplicable,
	}
	for input, want := range cases {
		if got := ParseSeverity(input); got != want {
			t.Fatalf("ParseSeverity(%q) = %s, want %s", input, got, want)
		}
	}
}
