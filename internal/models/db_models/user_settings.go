package db_models

import "github.com/google/uuid"

// UserSettings is a per-user singleton created lazily on first write.
type UserSettings struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CardioDistanceUnit string
	SwimDistanceUnit   string
	WeeklyGoalMinutes  int
}
