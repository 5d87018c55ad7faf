package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalTargets(t *testing.T) {
	tests := []struct {
		name            string
		daysRemaining   int
		weeklyFrequency int
		avgSessionHours float64
		wantWorkouts    int
		wantHours       float64
	}{
		{"four weeks at 3/wk", 28, 3, 1.5, 12, 18},
		{"partial week rounds up", 30, 3, 1.5, 13, 19.5},
		{"event this week floors at one", 2, 3, 1.0, 1, 1.0},
		{"event today", 0, 5, 2.0, 1, 2.0},
		{"negative runway clamps", -3, 5, 2.0, 1, 2.0},
		{"one day one per week", 1, 1, 0.5, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workouts, hours := GoalTargets(tt.daysRemaining, tt.weeklyFrequency, tt.avgSessionHours)
			assert.Equal(t, tt.wantWorkouts, workouts)
			assert.InDelta(t, tt.wantHours, hours, 1e-9)
		})
	}
}
