package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/request_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/utils"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

var distanceUnits = map[string]bool{
	"km": true,
	"mi": true,
	"m":  true,
	"yd": true,
}

type WorkoutServiceInterface interface {
	CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error)
	GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*response_models.WorkoutResponse, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.WorkoutResponse, error)
	ListWeek(ctx context.Context, userID uuid.UUID, anyDayOfWeek string) ([]response_models.WorkoutResponse, error)
	UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*response_models.WorkoutResponse, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error
	SimilarWorkouts(ctx context.Context, userID, workoutID uuid.UUID) ([]response_models.SimilarWorkout, error)
}

type WorkoutService struct {
	workoutRepo   repositories.WorkoutRepositoryInterface
	goalRepo      repositories.AthleteGoalRepositoryInterface
	eventRepo     repositories.SharedEventRepositoryInterface
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface
	embedClient   utils.EmbeddingClientInterface
}

func NewWorkoutService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	goalRepo repositories.AthleteGoalRepositoryInterface,
	eventRepo repositories.SharedEventRepositoryInterface,
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface,
	embedClient utils.EmbeddingClientInterface,
) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo:   workoutRepo,
		goalRepo:      goalRepo,
		eventRepo:     eventRepo,
		embeddingRepo: embeddingRepo,
		embedClient:   embedClient,
	}
}

// ValidateWorkoutInput rejects bad submissions before any write happens.
func ValidateWorkoutInput(activityType string, durationMinutes, rating int, date string, distance *float64, distanceUnit string) (time.Time, error) {
	if strings.TrimSpace(activityType) == "" {
		return time.Time{}, utils.ErrInvalidInput
	}
	if durationMinutes <= 0 {
		return time.Time{}, utils.ErrInvalidDuration
	}
	if rating < 1 || rating > 3 {
		return time.Time{}, utils.ErrInvalidRating
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return time.Time{}, utils.ErrInvalidDate
	}
	if distance != nil {
		if *distance <= 0 || !distanceUnits[distanceUnit] {
			return time.Time{}, utils.ErrInvalidDistance
		}
	}
	return day, nil
}

func (s *WorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	day, err := ValidateWorkoutInput(request.ActivityType, request.DurationMinutes, request.Rating, request.Date, request.Distance, request.DistanceUnit)
	if err != nil {
		return nil, err
	}

	workout := &db_models.Workout{
		UserID:          userID,
		ActivityType:    strings.TrimSpace(request.ActivityType),
		DurationMinutes: request.DurationMinutes,
		Rating:          request.Rating,
		Date:            day,
		Distance:        request.Distance,
		DistanceUnit:    request.DistanceUnit,
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.bankGoalProgress(ctx, userID, workout)

	resp := ToWorkoutResponse(workout)
	return &resp, nil
}

// bankGoalProgress bumps every goal whose event is still ahead. Best-effort:
// a failed bump is logged, never surfaced, and not rolled into the workout
// write.
func (s *WorkoutService) bankGoalProgress(ctx context.Context, userID uuid.UUID, workout *db_models.Workout) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("goal progress: listing goals failed: %v", err)
		return
	}

	today := utils.StartOfDay(time.Now())
	hours := float64(workout.DurationMinutes) / 60.0

	for _, goal := range goals {
		event, err := s.eventRepo.GetByID(ctx, goal.EventID)
		if err != nil || event == nil {
			continue
		}
		if event.Date.Before(today) {
			continue
		}
		if err := s.goalRepo.AddProgress(ctx, goal.ID, 1, hours); err != nil {
			log.Printf("goal progress: bump failed for goal %s: %v", goal.ID, err)
		}
	}
}

func (s *WorkoutService) GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*response_models.WorkoutResponse, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	resp := ToWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.WorkoutResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	workouts, err := s.workoutRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, ToWorkoutResponse(&workouts[i]))
	}
	return responses, nil
}

func (s *WorkoutService) ListWeek(ctx context.Context, userID uuid.UUID, anyDayOfWeek string) ([]response_models.WorkoutResponse, error) {
	day := utils.StartOfDay(time.Now())
	if anyDayOfWeek != "" {
		parsed, err := utils.ParseDate(anyDayOfWeek)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		day = parsed
	}

	weekStart := utils.StartOfWeek(day)
	workouts, err := s.workoutRepo.ListBetween(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, ToWorkoutResponse(&workouts[i]))
	}
	return responses, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	day, err := ValidateWorkoutInput(request.ActivityType, request.DurationMinutes, request.Rating, request.Date, request.Distance, request.DistanceUnit)
	if err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	// Full replacement of the editable fields; last write wins.
	workout.ActivityType = strings.TrimSpace(request.ActivityType)
	workout.DurationMinutes = request.DurationMinutes
	workout.Rating = request.Rating
	workout.Date = day
	workout.Distance = request.Distance
	workout.DistanceUnit = request.DistanceUnit

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := ToWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error {
	deleted, err := s.workoutRepo.DeleteForUser(ctx, workoutID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrWorkoutNotFound
	}
	return nil
}

func (s *WorkoutService) SimilarWorkouts(ctx context.Context, userID, workoutID uuid.UUID) ([]response_models.SimilarWorkout, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}
	if workout.Transcription == "" {
		return []response_models.SimilarWorkout{}, nil
	}

	vector, err := s.embedClient.GetEmbedding(ctx, workout.Transcription)
	if err != nil {
		return nil, utils.ErrProviderNotConfigured
	}

	neighbors, err := s.embeddingRepo.FindNearest(ctx, userID, vector, 6)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SimilarWorkout, 0, len(neighbors))
	for _, n := range neighbors {
		if n.WorkoutID == workoutID.String() {
			continue
		}
		results = append(results, response_models.SimilarWorkout{
			WorkoutID:    n.WorkoutID,
			ActivityType: n.ActivityType,
			Keywords:     n.Keywords,
		})
	}
	return results, nil
}

// DecodeAnalysis materializes the stored kind + payload columns as the tagged
// variant. A structured payload that no longer parses is surfaced as-is under
// the markdown kind rather than dropped.
func DecodeAnalysis(workout *db_models.Workout) *response_models.WorkoutAnalysis {
	switch workout.AnalysisKind {
	case db_models.AnalysisKindMarkdown:
		return &response_models.WorkoutAnalysis{
			Kind:     db_models.AnalysisKindMarkdown,
			Markdown: workout.AnalysisPayload,
			EditedAt: workout.AnalysisEditedAt,
		}
	case db_models.AnalysisKindStructured:
		var sets []response_models.WorkoutSet
		if err := json.Unmarshal([]byte(workout.AnalysisPayload), &sets); err != nil {
			return &response_models.WorkoutAnalysis{
				Kind:     db_models.AnalysisKindMarkdown,
				Markdown: workout.AnalysisPayload,
				EditedAt: workout.AnalysisEditedAt,
			}
		}
		return &response_models.WorkoutAnalysis{
			Kind:     db_models.AnalysisKindStructured,
			Sets:     sets,
			EditedAt: workout.AnalysisEditedAt,
		}
	default:
		return nil
	}
}

func ToWorkoutResponse(workout *db_models.Workout) response_models.WorkoutResponse {
	return response_models.WorkoutResponse{
		ID:              workout.ID.String(),
		ActivityType:    workout.ActivityType,
		DurationMinutes: workout.DurationMinutes,
		Rating:          workout.Rating,
		Date:            utils.FormatDate(workout.Date),
		Distance:        workout.Distance,
		DistanceUnit:    workout.DistanceUnit,
		Transcription:   workout.Transcription,
		Analysis:        DecodeAnalysis(workout),
		CreatedAt:       workout.CreatedAt,
		UpdatedAt:       workout.UpdatedAt,
	}
}
