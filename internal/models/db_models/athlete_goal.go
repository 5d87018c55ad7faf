package db_models

import "github.com/google/uuid"

// AthleteGoal banks completed workouts and hours toward an event date.
// Targets are computed once at creation from days-remaining and weekly
// frequency; progress fields are bumped when workouts are logged, with no
// transactional link to the workout row.
type AthleteGoal struct {
	BaseModel
	EventID uuid.UUID `gorm:"type:uuid;index"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`

	WeeklyFrequency int
	AvgSessionHours float64
	TargetWorkouts  int
	TargetHours     float64
	CompletedCount  int
	CompletedHours  float64

	Shares []GoalShare `gorm:"foreignKey:GoalID"`
}
