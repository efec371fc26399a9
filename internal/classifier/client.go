package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/leafcheck/internal/logging"
)

// Client exposes the subset of the remote model used by the analysis flow.
type Client interface {
	Classify(ctx context.Context, imageBytes []byte) (*Result, error)
}

// TransportError reports a failed call to the classification endpoint,
// carrying the HTTP status and the body text the server returned.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("classifier returned status %d: %s", e.StatusCode, e.Message)
}

type classifyRequest struct {
	Image string `json:"image"`
}

type classifyResponse struct {
	Disease     string  `json:"disease"`
	DisplayName string  `json:"displayName"`
	Confidence  float64 `json:"confidence"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
}

// HTTPClient calls the remote classification endpoint over HTTP/JSON.
type HTTPClient struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient constructs a classifier client for the given endpoint URL.
func NewHTTPClient(url string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		url:        url,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("classifier"),
	}
}

// Classify encodes the image as base64 JSON, issues a single POST and
// decodes the prediction. A non-2xx response becomes a *TransportError;
// retrying is the caller's decision.
func (c *HTTPClient) Classify(ctx context.Context, imageBytes []byte) (*Result, error) {
	payload, err := json.Marshal(classifyRequest{Image: base64.StdEncoding.EncodeToString(imageBytes)})
	if err != nil {
		return nil, logging.NewOperationError("classifier.encode_request", "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, logging.NewOperationError("classifier.build_request", "", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := logging.NewOperationError("classifier.post_image", "", err)
		c.logger.Error("classification call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, logging.NewOperationError("classifier.read_response", "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		terr := &TransportError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		c.logger.Error("classification endpoint rejected request",
			zap.Int("status", terr.StatusCode), zap.String("body", terr.Message))
		return nil, terr
	}

	var decoded classifyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, logging.NewOperationError("classifier.decode_response", "", err)
	}

	return &Result{
		Disease:     DiseaseID(decoded.Disease),
		DisplayName: decoded.DisplayName,
		Confidence:  clampConfidence(decoded.Confidence),
		Severity:    ParseSeverity(decoded.Severity),
		Description: decoded.Description,
	}, nil
}

func clampConfidence(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}
