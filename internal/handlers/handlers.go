package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/leafcheck/internal/analysis"
	"github.com/example/leafcheck/internal/classifier"
	"github.com/example/leafcheck/internal/history"
	"github.com/example/leafcheck/internal/identity"
	"github.com/example/leafcheck/internal/locale"
)

// MaxUploadSize bounds the accepted image payload.
const MaxUploadSize = 10 << 20

// HistoryStore is the ledger surface the handlers depend on.
type HistoryStore interface {
	Append(ctx context.Context, ownerID string, imageBytes []byte, disease classifier.DiseaseID, confidence int, severity classifier.Severity, notes string) (uint, error)
	List(ctx context.Context, ownerID string) ([]*history.DetectionRecord, error)
	Delete(ctx context.Context, ownerID string, recordID uint) (bool, error)
	AggregateSummary(ctx context.Context, ownerID string) (*history.Summary, error)
}

// Deps bundles what the routes need.
type Deps struct {
	Classifier classifier.Client
	History    HistoryStore
	Preference *locale.Preference
	Logger     *zap.Logger
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, deps Deps, identityMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/", identityMiddleware)

	api.POST("/analyze", deps.analyze)
	api.GET("/history", deps.listHistory)
	api.GET("/history/summary", deps.historySummary)
	api.DELETE("/history/:id", deps.deleteHistory)
	api.GET("/language", deps.getLanguage)
	api.PUT("/language", deps.setLanguage)
}

func (d Deps) analyze(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the upload limit"})
		return
	}
	if contentType := file.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only image uploads are supported"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	ownerID, _ := identity.OwnerID(c.Request.Context())
	session := analysis.NewSession(d.Classifier, d.History, d.Preference, ownerID, d.Logger)
	if err := session.Analyze(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": session.ErrMessage()})
		return
	}

	lang := d.Preference.Current()
	result := session.Result()
	recommendation := session.Recommendation()
	c.JSON(http.StatusOK, gin.H{
		"session_id":     session.ID(),
		"disease":        result.Disease,
		"display_name":   result.DisplayName,
		"confidence":     result.Confidence,
		"severity":       result.Severity,
		"severity_label": locale.Translate(locale.SeverityTranslationKey(result.Severity), lang),
		"description":    result.Description,
		"treatment":      recommendation.Treatment,
		"prevention":     recommendation.Prevention,
		"language":       lang,
	})
}

func (d Deps) listHistory(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	records, err := d.History.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.Translate("history.loadError", d.Preference.Current())})
		return
	}

	lang := d.Preference.Current()
	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, gin.H{
			"id":           record.ID,
			"image_url":    record.ImageURL,
			"disease":      record.Disease,
			"disease_name": locale.LocalizedDiseaseName(record.Disease, lang),
			"confidence":   record.Confidence,
			"severity":     record.Severity,
			"notes":        record.Notes,
			"created_at":   record.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (d Deps) historySummary(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	summary, err := d.History.AggregateSummary(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.Translate("history.loadError", d.Preference.Current())})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (d Deps) deleteHistory(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	recordID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	deleted, err := d.History.Delete(c.Request.Context(), ownerID, uint(recordID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.Translate("history.deleteError", d.Preference.Current())})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"deleted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (d Deps) getLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": d.Preference.Current()})
}

type languageRequest struct {
	Language string `json:"language"`
}

func (d Deps) setLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language is required"})
		return
	}
	if !locale.Supported(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language code"})
		return
	}

	d.Preference.Set(c.Request.Context(), locale.Language(req.Language))
	c.JSON(http.StatusOK, gin.H{"language": d.Preference.Current()})
}

// requireOwner resolves the request owner, answering 401 with a retryable
// error body when no identity exists.
func requireOwner(c *gin.Context) (string, bool) {
	ownerID, ok := identity.OwnerID(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required", "retryable": true})
		return "", false
	}
	return ownerID, true
}
