package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitlog/internal/models/db_models"
)

func dayWorkout(daysAgo, minutes, rating int, now time.Time) db_models.Workout {
	return db_models.Workout{
		Date:            now.AddDate(0, 0, -daysAgo),
		DurationMinutes: minutes,
		Rating:          rating,
	}
}

func TestWeeklySummaryWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	workouts := []db_models.Workout{
		dayWorkout(0, 30, 3, now),
		dayWorkout(6, 45, 2, now),
		dayWorkout(7, 60, 1, now), // one day past the window
		dayWorkout(8, 60, 1, now),
	}

	stats := WeeklySummary(workouts, now)

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 75, stats.TotalMinutes)
	assert.Equal(t, 2.5, stats.AverageRating)
}

func TestWeeklySummaryTotals(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	workouts := []db_models.Workout{
		dayWorkout(1, 30, 1, now),
		dayWorkout(2, 45, 3, now),
		dayWorkout(3, 20, 2, now),
		dayWorkout(8, 60, 3, now),
	}

	stats := WeeklySummary(workouts, now)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 95, stats.TotalMinutes)
	assert.Equal(t, 2.0, stats.AverageRating)
}

func TestWeeklySummaryEmpty(t *testing.T) {
	stats := WeeklySummary(nil, time.Now())

	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0, stats.TotalMinutes)
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestWeeklySummaryRatingRounding(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	workouts := []db_models.Workout{
		dayWorkout(0, 10, 1, now),
		dayWorkout(1, 10, 1, now),
		dayWorkout(2, 10, 2, now),
	}

	stats := WeeklySummary(workouts, now)

	// 4/3 rounds to one decimal place
	assert.Equal(t, 1.3, stats.AverageRating)
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysAgo  []int
		expected int
	}{
		{"no workouts", nil, 0},
		{"only today", []int{0}, 1},
		{"today and yesterday", []int{0, 1}, 2},
		{"ends yesterday", []int{1, 2, 3}, 3},
		{"ended two days ago", []int{2, 3}, 0},
		{"gap breaks streak", []int{0, 1, 3, 4}, 2},
		{"two same day", []int{0, 0, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var workouts []db_models.Workout
			for _, d := range tt.daysAgo {
				workouts = append(workouts, dayWorkout(d, 30, 2, now))
			}
			assert.Equal(t, tt.expected, CurrentStreak(workouts, now))
		})
	}
}
