package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/leafcheck/internal/blobstore"
	"github.com/example/leafcheck/internal/classifier"
	"github.com/example/leafcheck/internal/logging"
)

// Ledger is the append-only per-owner log of past detections. Appends
// upload the image blob first and then insert the record; callers on the
// analysis path treat any failure as best effort.
type Ledger struct {
	db             *gorm.DB
	blobs          blobstore.Store
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewLedger constructs a ledger over the record store and blob store.
func NewLedger(db *gorm.DB, blobs blobstore.Store, logger *zap.Logger) *Ledger {
	return &Ledger{
		db:             db,
		blobs:          blobs,
		logger:         logger.Named("history_ledger"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (l *Ledger) AutoMigrate(ctx context.Context) error {
	return l.db.WithContext(ctx).AutoMigrate(&DetectionRecord{})
}

// Append uploads the image and writes a record owned by ownerID. Every
// record must carry a non-empty owner key.
func (l *Ledger) Append(ctx context.Context, ownerID string, imageBytes []byte, disease classifier.DiseaseID, confidence int, severity classifier.Severity, notes string) (uint, error) {
	if ownerID == "" {
		return 0, logging.NewOperationError("history.append", "", fmt.Errorf("owner id is required"))
	}

	imageURL, err := l.blobs.Put(ctx, ownerID, imageBytes)
	if err != nil {
		return 0, logging.NewOperationError("history.upload_image", "", err)
	}

	record := &DetectionRecord{
		OwnerID:    ownerID,
		ImageURL:   imageURL,
		Disease:    disease,
		Confidence: confidence,
		Severity:   severity,
		Notes:      notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := l.executeWithRetry(ctx, "history.insert_record", ownerID, func() error {
		return l.db.WithContext(ctx).Create(record).Error
	}); err != nil {
		return 0, err
	}

	l.logger.Info("appended detection record",
		zap.Uint("record_id", record.ID),
		zap.String("owner_id", ownerID),
		zap.String("disease", string(disease)))
	return record.ID, nil
}

// List returns the owner's records, newest first.
func (l *Ledger) List(ctx context.Context, ownerID string) ([]*DetectionRecord, error) {
	var records []*DetectionRecord
	err := l.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, logging.NewOperationError("history.list", "", err)
	}
	return records, nil
}

// Delete removes one record by id, scoped to the owner. A missing or
// foreign record reports false without an error.
func (l *Ledger) Delete(ctx context.Context, ownerID string, recordID uint) (bool, error) {
	result := l.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", recordID, ownerID).
		Delete(&DetectionRecord{})
	if result.Error != nil {
		return false, logging.NewOperationError("history.delete", "", result.Error)
	}
	return result.RowsAffected > 0, nil
}

type summaryRow struct {
	TotalCount        int64
	HealthyCount      int64
	AverageConfidence float64
}

// AggregateSummary builds the owner's history statistics.
func (l *Ledger) AggregateSummary(ctx context.Context, ownerID string) (*Summary, error) {
	var row summaryRow
	err := l.db.WithContext(ctx).
		Model(&DetectionRecord{}).
		Select("COUNT(*) AS total_count, COUNT(*) FILTER (WHERE disease = ?) AS healthy_count, COALESCE(AVG(confidence), 0) AS average_confidence", classifier.Healthy).
		Where("owner_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return nil, logging.NewOperationError("history.aggregate_summary", "", err)
	}

	summary := &Summary{
		TotalDetections:   row.TotalCount,
		HealthyDetections: row.HealthyCount,
		AverageConfidence: row.AverageConfidence,
	}

	if row.TotalCount > 0 {
		var top struct{ Disease string }
		err = l.db.WithContext(ctx).
			Model(&DetectionRecord{}).
			Select("disease").
			Where("owner_id = ? AND disease NOT IN ?", ownerID, []classifier.DiseaseID{classifier.Healthy, classifier.NotTomatoLeaf}).
			Group("disease").
			Order("COUNT(*) DESC").
			Limit(1).
			Scan(&top).Error
		if err != nil {
			return nil, logging.NewOperationError("history.aggregate_top_disease", "", err)
		}
		summary.TopDisease = top.Disease
	}

	return summary, nil
}

func (l *Ledger) executeWithRetry(ctx context.Context, operation, ownerID string, fn func() error) error {
	backoff := l.initialBackoff
	opLogger := logging.WithOperation(l.logger, operation, "").With(zap.String("owner_id", ownerID))
	var err error
	for attempt := 0; attempt < l.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, "", ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= l.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("write succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == l.retryAttempts-1 {
			opLogger.Error("write failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, "", err)
		}

		opLogger.Warn("transient write error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, "", err)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
