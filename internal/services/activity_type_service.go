package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/utils"
)

// DefaultActivityTypes is the fixed catalog every user starts from.
var DefaultActivityTypes = []string{
	"run", "ride", "swim", "strength", "yoga", "walk", "row", "other",
}

type ActivityTypeServiceInterface interface {
	ListActivityTypes(ctx context.Context, userID uuid.UUID) ([]response_models.ActivityTypeResponse, error)
	CreateActivityType(ctx context.Context, userID uuid.UUID, name string) (*response_models.ActivityTypeResponse, error)
	DeleteActivityType(ctx context.Context, userID, typeID uuid.UUID) error
}

type ActivityTypeService struct {
	activityTypeRepo repositories.ActivityTypeRepositoryInterface
}

func NewActivityTypeService(activityTypeRepo repositories.ActivityTypeRepositoryInterface) ActivityTypeServiceInterface {
	return &ActivityTypeService{activityTypeRepo: activityTypeRepo}
}

func (s *ActivityTypeService) ListActivityTypes(ctx context.Context, userID uuid.UUID) ([]response_models.ActivityTypeResponse, error) {
	responses := make([]response_models.ActivityTypeResponse, 0, len(DefaultActivityTypes))
	for _, name := range DefaultActivityTypes {
		responses = append(responses, response_models.ActivityTypeResponse{Name: name})
	}

	custom, err := s.activityTypeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for _, t := range custom {
		responses = append(responses, response_models.ActivityTypeResponse{
			ID:     t.ID.String(),
			Name:   t.Name,
			Custom: true,
		})
	}

	return responses, nil
}

func (s *ActivityTypeService) CreateActivityType(ctx context.Context, userID uuid.UUID, name string) (*response_models.ActivityTypeResponse, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, utils.ErrInvalidInput
	}
	for _, fixed := range DefaultActivityTypes {
		if name == fixed {
			return nil, utils.ErrActivityTypeExists
		}
	}

	existing, err := s.activityTypeRepo.FindByName(ctx, userID, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrActivityTypeExists
	}

	activityType := &db_models.ActivityType{
		UserID: userID,
		Name:   name,
	}
	if err := s.activityTypeRepo.Create(ctx, activityType); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ActivityTypeResponse{
		ID:     activityType.ID.String(),
		Name:   activityType.Name,
		Custom: true,
	}, nil
}

// DeleteActivityType removes the catalog entry only; workouts that recorded
// the type keep their string.
func (s *ActivityTypeService) DeleteActivityType(ctx context.Context, userID, typeID uuid.UUID) error {
	deleted, err := s.activityTypeRepo.DeleteForUser(ctx, typeID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrActivityTypeNotFound
	}
	return nil
}
