package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis payload kinds. A workout carries at most one analysis; the kind
// column tags which schema the payload column holds.
const (
	AnalysisKindMarkdown   = "markdown"
	AnalysisKindStructured = "structured"
)

type Workout struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	ActivityType    string
	DurationMinutes int
	Rating          int
	// Date is a calendar day; the clock component is always midnight UTC.
	Date         time.Time `gorm:"type:date"`
	Distance     *float64
	DistanceUnit string

	Transcription string `gorm:"type:text"`
	// AnalysisKind is "" until an analysis exists, then one of the
	// AnalysisKind* constants. AnalysisPayload holds markdown text or the
	// JSON-encoded set list accordingly.
	AnalysisKind     string
	AnalysisPayload  string `gorm:"type:text"`
	AnalysisEditedAt int64
}
