package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/utils"
)

// statsWindow bounds how much history is loaded for the reduction. Stats are
// computed client-side over this window, not aggregated in SQL.
const statsWindow = 365

type StatsServiceInterface interface {
	Summary(ctx context.Context, userID uuid.UUID) (*response_models.StatsSummary, error)
}

type StatsService struct {
	workoutRepo  repositories.WorkoutRepositoryInterface
	settingsRepo repositories.SettingsRepositoryInterface
}

func NewStatsService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
) StatsServiceInterface {
	return &StatsService{
		workoutRepo:  workoutRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *StatsService) Summary(ctx context.Context, userID uuid.UUID) (*response_models.StatsSummary, error) {
	workouts, err := s.workoutRepo.ListRecent(ctx, userID, statsWindow)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	summary := &response_models.StatsSummary{
		CurrentStreakDays: CurrentStreak(workouts, now),
		Week:              WeeklySummary(workouts, now),
		WeeklyGoalMinutes: defaultWeeklyGoalMinutes,
	}

	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err == nil && settings != nil {
		summary.WeeklyGoalMinutes = settings.WeeklyGoalMinutes
	}

	return summary, nil
}

// WeeklySummary reduces the rolling last-7-days window (today inclusive):
// a workout dated 8 days ago is excluded, one dated today counts.
func WeeklySummary(workouts []db_models.Workout, now time.Time) response_models.WeeklyStats {
	windowStart := utils.StartOfDay(now).AddDate(0, 0, -6)

	var stats response_models.WeeklyStats
	var ratingSum int
	for _, w := range workouts {
		if utils.StartOfDay(w.Date).Before(windowStart) {
			continue
		}
		stats.Count++
		stats.TotalMinutes += w.DurationMinutes
		ratingSum += w.Rating
	}

	if stats.Count > 0 {
		avg := float64(ratingSum) / float64(stats.Count)
		stats.AverageRating = math.Round(avg*10) / 10
	}
	return stats
}

// CurrentStreak counts consecutive calendar days with at least one workout.
// The streak may end today or yesterday; any older gap breaks it.
func CurrentStreak(workouts []db_models.Workout, now time.Time) int {
	days := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		days[utils.FormatDate(w.Date)] = true
	}

	cursor := utils.StartOfDay(now)
	if !days[utils.FormatDate(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[utils.FormatDate(cursor)] {
			return 0
		}
	}

	streak := 0
	for days[utils.FormatDate(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
