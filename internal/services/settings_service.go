package services

import (
	"context"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/request_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/utils"
)

// Defaults returned before a user's first settings write.
const (
	defaultCardioUnit        = "km"
	defaultSwimUnit          = "m"
	defaultWeeklyGoalMinutes = 150
)

type SettingsServiceInterface interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*response_models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateSettingsRequest) (*response_models.SettingsResponse, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*response_models.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		return &response_models.SettingsResponse{
			CardioDistanceUnit: defaultCardioUnit,
			SwimDistanceUnit:   defaultSwimUnit,
			WeeklyGoalMinutes:  defaultWeeklyGoalMinutes,
		}, nil
	}

	return &response_models.SettingsResponse{
		CardioDistanceUnit: settings.CardioDistanceUnit,
		SwimDistanceUnit:   settings.SwimDistanceUnit,
		WeeklyGoalMinutes:  settings.WeeklyGoalMinutes,
	}, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateSettingsRequest) (*response_models.SettingsResponse, error) {
	if !distanceUnits[request.CardioDistanceUnit] || !distanceUnits[request.SwimDistanceUnit] {
		return nil, utils.ErrInvalidDistance
	}
	if request.WeeklyGoalMinutes < 0 {
		return nil, utils.ErrInvalidInput
	}

	settings := &db_models.UserSettings{
		UserID:             userID,
		CardioDistanceUnit: request.CardioDistanceUnit,
		SwimDistanceUnit:   request.SwimDistanceUnit,
		WeeklyGoalMinutes:  request.WeeklyGoalMinutes,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SettingsResponse{
		CardioDistanceUnit: settings.CardioDistanceUnit,
		SwimDistanceUnit:   settings.SwimDistanceUnit,
		WeeklyGoalMinutes:  settings.WeeklyGoalMinutes,
	}, nil
}
