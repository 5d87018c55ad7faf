package db_models

import "github.com/google/uuid"

// GoalShare grants a second user (coach/parent) read access to one goal.
type GoalShare struct {
	BaseModel
	GoalID     uuid.UUID `gorm:"type:uuid;index:idx_goal_share_goal_user,unique"`
	SharedWith uuid.UUID `gorm:"type:uuid;index:idx_goal_share_goal_user,unique"`
}
