package db_models

import (
	"time"

	"github.com/google/uuid"
)

type SharedEvent struct {
	BaseModel
	Name         string
	Date         time.Time `gorm:"type:date"`
	Discoverable bool
	ShareToken   string    `gorm:"uniqueIndex"`
	CreatedBy    uuid.UUID `gorm:"type:uuid"`

	Goals []AthleteGoal `gorm:"foreignKey:EventID"`
}
