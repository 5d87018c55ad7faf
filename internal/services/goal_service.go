package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/request_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/utils"
)

type GoalServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, request request_models.CreateEventRequest) (*response_models.EventResponse, error)
	ListDiscoverableEvents(ctx context.Context) ([]response_models.EventResponse, error)
	FindEventByShareToken(ctx context.Context, token string) (*response_models.EventResponse, error)
	CreateGoal(ctx context.Context, userID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]response_models.GoalResponse, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*response_models.GoalResponse, error)
	ShareGoal(ctx context.Context, ownerID, goalID uuid.UUID, email string) error
	ListSharedWithMe(ctx context.Context, userID uuid.UUID) ([]response_models.GoalResponse, error)
}

type GoalService struct {
	eventRepo   repositories.SharedEventRepositoryInterface
	goalRepo    repositories.AthleteGoalRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewGoalService(
	eventRepo repositories.SharedEventRepositoryInterface,
	goalRepo repositories.AthleteGoalRepositoryInterface,
	accountRepo repositories.AccountRepository,
) GoalServiceInterface {
	return &GoalService{
		eventRepo:   eventRepo,
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
	}
}

// GoalTargets derives the banked targets from the runway to the event:
// (days remaining / 7) weeks times the weekly frequency, rounded up, with a
// floor of one workout so a goal created the week of the event still asks
// for something.
func GoalTargets(daysRemaining, weeklyFrequency int, avgSessionHours float64) (int, float64) {
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	workouts := int(math.Ceil(float64(daysRemaining) / 7.0 * float64(weeklyFrequency)))
	if workouts < 1 {
		workouts = 1
	}
	return workouts, float64(workouts) * avgSessionHours
}

func (s *GoalService) CreateEvent(ctx context.Context, userID uuid.UUID, request request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	event, err := s.buildEvent(userID, request)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func (s *GoalService) buildEvent(userID uuid.UUID, request request_models.CreateEventRequest) (*db_models.SharedEvent, error) {
	day, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}
	if day.Before(utils.StartOfDay(time.Now())) {
		return nil, utils.ErrInvalidInput
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &db_models.SharedEvent{
		Name:         request.Name,
		Date:         day,
		Discoverable: request.Discoverable,
		ShareToken:   token,
		CreatedBy:    userID,
	}, nil
}

func (s *GoalService) ListDiscoverableEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListDiscoverable(ctx, 100)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toEventResponse(&events[i]))
	}
	return responses, nil
}

func (s *GoalService) FindEventByShareToken(ctx context.Context, token string) (*response_models.EventResponse, error) {
	event, err := s.eventRepo.GetByShareToken(ctx, token)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error) {
	if request.WeeklyFrequency <= 0 || request.AvgSessionHours <= 0 {
		return nil, utils.ErrInvalidInput
	}

	var event *db_models.SharedEvent
	switch {
	case request.EventID != "":
		eventID, err := uuid.Parse(request.EventID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event, err = s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if event == nil {
			return nil, utils.ErrEventNotFound
		}
	case request.NewEvent != nil:
		built, err := s.buildEvent(userID, *request.NewEvent)
		if err != nil {
			return nil, err
		}
		if err := s.eventRepo.Create(ctx, built); err != nil {
			return nil, utils.ErrDatabaseError
		}
		event = built
	default:
		return nil, utils.ErrInvalidInput
	}

	daysRemaining := utils.DaysBetween(time.Now(), event.Date)
	targetWorkouts, targetHours := GoalTargets(daysRemaining, request.WeeklyFrequency, request.AvgSessionHours)

	goal := &db_models.AthleteGoal{
		EventID:         event.ID,
		UserID:          userID,
		WeeklyFrequency: request.WeeklyFrequency,
		AvgSessionHours: request.AvgSessionHours,
		TargetWorkouts:  targetWorkouts,
		TargetHours:     targetHours,
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toGoalResponse(goal, event)
	return &resp, nil
}

func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]response_models.GoalResponse, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.resolveGoalEvents(ctx, goals)
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*response_models.GoalResponse, error) {
	goal, err := s.goalRepo.GetByIDForUser(ctx, goalID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if goal == nil {
		return nil, utils.ErrGoalNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, goal.EventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	resp := toGoalResponse(goal, event)
	return &resp, nil
}

func (s *GoalService) ShareGoal(ctx context.Context, ownerID, goalID uuid.UUID, email string) error {
	goal, err := s.goalRepo.GetByIDForUser(ctx, goalID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if goal == nil {
		return utils.ErrGoalNotFound
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	share := &db_models.GoalShare{
		GoalID:     goal.ID,
		SharedWith: account.ID,
	}
	if err := s.goalRepo.CreateShare(ctx, share); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GoalService) ListSharedWithMe(ctx context.Context, userID uuid.UUID) ([]response_models.GoalResponse, error) {
	goals, err := s.goalRepo.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.resolveGoalEvents(ctx, goals)
}

func (s *GoalService) resolveGoalEvents(ctx context.Context, goals []db_models.AthleteGoal) ([]response_models.GoalResponse, error) {
	responses := make([]response_models.GoalResponse, 0, len(goals))
	for i := range goals {
		event, err := s.eventRepo.GetByID(ctx, goals[i].EventID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if event == nil {
			continue
		}
		responses = append(responses, toGoalResponse(&goals[i], event))
	}
	return responses, nil
}

func toEventResponse(event *db_models.SharedEvent) response_models.EventResponse {
	return response_models.EventResponse{
		ID:           event.ID.String(),
		Name:         event.Name,
		Date:         utils.FormatDate(event.Date),
		Discoverable: event.Discoverable,
		ShareToken:   event.ShareToken,
	}
}

func toGoalResponse(goal *db_models.AthleteGoal, event *db_models.SharedEvent) response_models.GoalResponse {
	return response_models.GoalResponse{
		ID:              goal.ID.String(),
		Event:           toEventResponse(event),
		WeeklyFrequency: goal.WeeklyFrequency,
		TargetWorkouts:  goal.TargetWorkouts,
		TargetHours:     goal.TargetHours,
		CompletedCount:  goal.CompletedCount,
		CompletedHours:  goal.CompletedHours,
	}
}
