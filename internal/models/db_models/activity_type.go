package db_models

import "github.com/google/uuid"

// ActivityType is a per-user extension of the fixed activity catalog.
// Deleting one never rewrites workouts; they keep the recorded type string.
type ActivityType struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index:idx_activity_type_user_name,unique"`
	Name   string    `gorm:"index:idx_activity_type_user_name,unique"`
}
