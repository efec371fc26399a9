// Package analysis orchestrates one image analysis session: classify,
// localize, hold the result, and re-derive localized text when the active
// language changes.
package analysis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/leafcheck/internal/advice"
	"github.com/example/leafcheck/internal/classifier"
	"github.com/example/leafcheck/internal/locale"
	"github.com/example/leafcheck/internal/logging"
)

// State names the lifecycle phase of a session.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// ErrAnalysisInFlight rejects a second classification while one is still
// outstanding. The in-flight call is never cancelled; callers retry after
// it settles.
var ErrAnalysisInFlight = errors.New("an analysis is already in flight")

// ErrNoImage is returned by Retry before any image was submitted.
var ErrNoImage = errors.New("no image to retry")

// HistoryAppender is the ledger operation the session dispatches after a
// meaningful detection.
type HistoryAppender interface {
	Append(ctx context.Context, ownerID string, imageBytes []byte, disease classifier.DiseaseID, confidence int, severity classifier.Severity, notes string) (uint, error)
}

const appendTimeout = 30 * time.Second

// Session owns the state of one analysis: the prediction, its localized
// recommendation, and the user-facing error when classification fails.
// The identifier, confidence and severity of a held result never change;
// description and recommendation are re-derived on language change.
type Session struct {
	id      string
	model   classifier.Client
	history HistoryAppender
	pref    *locale.Preference
	ownerID string
	logger  *zap.Logger

	mu             sync.Mutex
	state          State
	busy           bool
	image          []byte
	result         *classifier.Result
	recommendation advice.Recommendation
	errMsg         string

	appends sync.WaitGroup
}

// NewSession constructs an idle session for one owner. ownerID may be empty
// when no identity exists; the history append is then skipped.
func NewSession(model classifier.Client, history HistoryAppender, pref *locale.Preference, ownerID string, logger *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		model:   model,
		history: history,
		pref:    pref,
		ownerID: ownerID,
		state:   StateIdle,
		logger:  logging.WithOperation(logger.Named("analysis"), "analysis.session", id),
	}
}

// Analyze runs one classification for the given image and settles the
// session in Ready or Failed. While a call is outstanding any further
// Analyze or Retry returns ErrAnalysisInFlight.
func (s *Session) Analyze(ctx context.Context, imageBytes []byte) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrAnalysisInFlight
	}
	s.busy = true
	s.state = StateLoading
	s.image = imageBytes
	s.result = nil
	s.recommendation = advice.Recommendation{}
	s.errMsg = ""
	s.mu.Unlock()

	result, err := s.model.Classify(ctx, imageBytes)
	if err != nil {
		s.fail(err)
		return err
	}

	s.settle(result, imageBytes)
	return nil
}

// Retry re-runs the classification with the image of the previous attempt.
func (s *Session) Retry(ctx context.Context) error {
	s.mu.Lock()
	image := s.image
	s.mu.Unlock()
	if image == nil {
		return ErrNoImage
	}
	return s.Analyze(ctx, image)
}

func (s *Session) fail(cause error) {
	// The prefix is localized with whatever language is active once the
	// failure lands, not the one active at submission.
	message := locale.Translate("result.errorMessage", s.pref.Current()) + " " + cause.Error()

	s.mu.Lock()
	s.busy = false
	s.state = StateFailed
	s.errMsg = message
	s.mu.Unlock()

	s.logger.Error("classification failed", zap.Error(cause))
}

func (s *Session) settle(result *classifier.Result, imageBytes []byte) {
	// Resolve against the language active now, so a change that arrived
	// while the call was in flight is already reflected.
	lang := s.pref.Current()
	result.Description = advice.ResolveDescription(result.Disease, lang)
	result.DisplayName = locale.LocalizedDiseaseName(result.Disease, lang)
	recommendation := advice.ResolveRecommendation(result.Disease, lang)

	s.mu.Lock()
	s.busy = false
	s.state = StateReady
	s.result = result
	s.recommendation = recommendation
	s.mu.Unlock()

	s.logger.Info("classification ready",
		zap.String("disease", string(result.Disease)),
		zap.Int("confidence", result.Confidence))

	if result.Disease == classifier.NotTomatoLeaf {
		return
	}
	if s.history == nil || s.ownerID == "" {
		s.logger.Info("skipping history append without an identity")
		return
	}

	// Fire and forget: display never waits on persistence, and a failed
	// append is logged, not surfaced.
	s.appends.Add(1)
	go func(disease classifier.DiseaseID, confidence int, severity classifier.Severity) {
		defer s.appends.Done()
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		defer cancel()
		if _, err := s.history.Append(ctx, s.ownerID, imageBytes, disease, confidence, severity, ""); err != nil {
			s.logger.Warn("history append failed", zap.Error(err))
		}
	}(result.Disease, result.Confidence, result.Severity)
}

// OnLanguageChange re-derives the description and recommendation of a held
// result for the newly active language. The identifier, confidence and
// severity are untouched and no classification call is issued. In any state
// other than Ready this is a no-op: a change arriving during Loading is
// picked up when the result settles.
func (s *Session) OnLanguageChange() {
	lang := s.pref.Current()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.result == nil {
		return
	}
	s.result.Description = advice.ResolveDescription(s.result.Disease, lang)
	s.recommendation = advice.ResolveRecommendation(s.result.Disease, lang)
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns a copy of the held prediction, or nil outside Ready.
func (s *Session) Result() *classifier.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil
	}
	copied := *s.result
	return &copied
}

// Recommendation returns the care guidance derived for the held result.
func (s *Session) Recommendation() advice.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recommendation
}

// ErrMessage returns the user-facing failure text, empty outside Failed.
func (s *Session) ErrMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}
