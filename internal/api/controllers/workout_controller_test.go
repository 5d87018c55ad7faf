package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlog/internal/models/request_models"
	"fitlog/internal/models/response_models"
	"fitlog/pkg/utils"
)

type stubWorkoutService struct {
	createResp *response_models.WorkoutResponse
	getResp    *response_models.WorkoutResponse
	err        error
}

func (s *stubWorkoutService) CreateWorkout(context.Context, uuid.UUID, request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	return s.createResp, s.err
}

func (s *stubWorkoutService) GetWorkout(context.Context, uuid.UUID, uuid.UUID) (*response_models.WorkoutResponse, error) {
	return s.getResp, s.err
}

func (s *stubWorkoutService) ListHistory(context.Context, uuid.UUID, int) ([]response_models.WorkoutResponse, error) {
	return nil, s.err
}

func (s *stubWorkoutService) ListWeek(context.Context, uuid.UUID, string) ([]response_models.WorkoutResponse, error) {
	return nil, s.err
}

func (s *stubWorkoutService) UpdateWorkout(context.Context, uuid.UUID, uuid.UUID, request_models.UpdateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	return nil, s.err
}

func (s *stubWorkoutService) DeleteWorkout(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func (s *stubWorkoutService) SimilarWorkouts(context.Context, uuid.UUID, uuid.UUID) ([]response_models.SimilarWorkout, error) {
	return nil, s.err
}

func testRouter(svc *stubWorkoutService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})

	ctrl := NewWorkoutController(svc)
	r.POST("/workouts", ctrl.Create)
	r.GET("/workouts/:id", ctrl.Get)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestWorkoutCreate(t *testing.T) {
	svc := &stubWorkoutService{createResp: &response_models.WorkoutResponse{ID: "w1", ActivityType: "run"}}
	router := testRouter(svc, uuid.New().String())

	body, _ := json.Marshal(request_models.CreateWorkoutRequest{
		ActivityType:    "run",
		DurationMinutes: 30,
		Rating:          2,
		Date:            "2026-03-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "success", envelope.Status)
}

func TestWorkoutCreateRejectsBadJSON(t *testing.T) {
	router := testRouter(&stubWorkoutService{}, uuid.New().String())

	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutCreateRejectsInvalidInput(t *testing.T) {
	svc := &stubWorkoutService{err: utils.ErrInvalidRating}
	router := testRouter(svc, uuid.New().String())

	body, _ := json.Marshal(request_models.CreateWorkoutRequest{
		ActivityType:    "run",
		DurationMinutes: 30,
		Rating:          9,
		Date:            "2026-03-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "error", envelope.Status)
}

// Foreign ownership and a genuinely missing row look identical to the caller.
func TestWorkoutGetForeignWorkoutIs404(t *testing.T) {
	svc := &stubWorkoutService{err: utils.ErrWorkoutNotFound}
	router := testRouter(svc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkoutGetRejectsMalformedID(t *testing.T) {
	router := testRouter(&stubWorkoutService{}, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/workouts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutGetMissingUserContext(t *testing.T) {
	router := testRouter(&stubWorkoutService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
