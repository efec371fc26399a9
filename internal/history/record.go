package history

import (
	"time"

	"github.com/example/leafcheck/internal/classifier"
)

// DetectionRecord is one persisted detection. Records are immutable after
// creation; the only mutation the ledger supports is whole-record deletion.
type DetectionRecord struct {
	ID         uint                 `gorm:"primaryKey"`
	OwnerID    string               `gorm:"column:owner_id;size:64;index:idx_owner_created,priority:1"`
	ImageURL   string               `gorm:"column:image_url;type:text"`
	Disease    classifier.DiseaseID `gorm:"column:disease;size:64"`
	Confidence int                  `gorm:"column:confidence"`
	Severity   classifier.Severity  `gorm:"column:severity;size:16"`
	Notes      string               `gorm:"column:notes;type:text"`
	CreatedAt  time.Time            `gorm:"column:created_at;index:idx_owner_created,priority:2,sort:desc"`
}

// TableName overrides the default table name.
func (DetectionRecord) TableName() string {
	return "detection_records"
}

// Summary aggregates an owner's detection history for the stats view.
type Summary struct {
	TotalDetections   int64   `json:"total_detections"`
	HealthyDetections int64   `json:"healthy_detections"`
	AverageConfidence float64 `json:"average_confidence"`
	TopDisease        string  `json:"top_disease"`
}
