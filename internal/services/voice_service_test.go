package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlog/internal/models/db_models"
	"fitlog/pkg/speech"
	"fitlog/pkg/utils"
)

type fakeWorkoutRepo struct {
	workouts map[uuid.UUID]*db_models.Workout
	updated  *db_models.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[uuid.UUID]*db_models.Workout)}
}

func (f *fakeWorkoutRepo) Create(_ context.Context, w *db_models.Workout) error {
	f.workouts[w.ID] = w
	return nil
}

func (f *fakeWorkoutRepo) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (*db_models.Workout, error) {
	w, ok := f.workouts[id]
	if !ok || w.UserID != userID {
		return nil, nil
	}
	return w, nil
}

func (f *fakeWorkoutRepo) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]db_models.Workout, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) ListBetween(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]db_models.Workout, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) Update(_ context.Context, w *db_models.Workout) error {
	f.workouts[w.ID] = w
	f.updated = w
	return nil
}

func (f *fakeWorkoutRepo) DeleteForUser(_ context.Context, id, _ uuid.UUID) (bool, error) {
	_, ok := f.workouts[id]
	delete(f.workouts, id)
	return ok, nil
}

type fakeTranscriber struct {
	result speech.Result
	err    error
}

func (f *fakeTranscriber) Transcribe(context.Context, []byte, string) (speech.Result, error) {
	return f.result, f.err
}

type fakeCompletion struct {
	response string
	err      error
}

func (f *fakeCompletion) Complete(context.Context, string) (string, error) {
	return f.response, f.err
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GetEmbedding(context.Context, string) (pgvector.Vector, error) {
	return pgvector.NewVector([]float32{0.1, 0.2}), f.err
}

type fakeEmbeddingRepo struct {
	upserts []*db_models.WorkoutEmbedding
}

func (f *fakeEmbeddingRepo) Upsert(_ context.Context, e *db_models.WorkoutEmbedding) error {
	f.upserts = append(f.upserts, e)
	return nil
}

func (f *fakeEmbeddingRepo) FindNearest(context.Context, uuid.UUID, pgvector.Vector, int) ([]db_models.WorkoutEmbedding, error) {
	return nil, nil
}

func testPromptStore(t *testing.T) *PromptStore {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"workout_analysis@v1.md", "workout_sets@v1.md"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("Analyze: {{.Transcript}}"), 0o644)
		require.NoError(t, err)
	}
	return NewPromptStore(dir)
}

func voiceFixture(t *testing.T, transcriber speech.Transcriber, completions utils.CompletionClientInterface) (VoiceServiceInterface, *fakeWorkoutRepo, *fakeEmbeddingRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	repo := newFakeWorkoutRepo()
	embRepo := &fakeEmbeddingRepo{}
	userID := uuid.New()
	workoutID := uuid.New()
	repo.workouts[workoutID] = &db_models.Workout{
		BaseModel:    db_models.BaseModel{ID: workoutID},
		UserID:       userID,
		ActivityType: "swim",
	}

	svc := NewVoiceService(transcriber, completions, &fakeEmbedder{}, testPromptStore(t), repo, embRepo)
	return svc, repo, embRepo, userID, workoutID
}

func TestProcessUploadHappyPath(t *testing.T) {
	transcriber := &fakeTranscriber{result: speech.Result{Text: "swam two thousand meters freestyle intervals"}}
	completions := &fakeCompletion{response: "# Strong interval session\n\nGood pacing throughout."}
	svc, repo, embRepo, userID, workoutID := voiceFixture(t, transcriber, completions)

	resp, err := svc.ProcessUpload(context.Background(), userID, workoutID, []byte("audio"))
	require.NoError(t, err)

	assert.Equal(t, "swam two thousand meters freestyle intervals", resp.Transcript)
	assert.Equal(t, db_models.AnalysisKindMarkdown, resp.Analysis.Kind)
	assert.Equal(t, "Strong interval session", resp.Summary)
	assert.Empty(t, resp.AnalysisError)

	require.NotNil(t, repo.updated)
	assert.Equal(t, "swam two thousand meters freestyle intervals", repo.updated.Transcription)
	assert.Equal(t, completions.response, repo.updated.AnalysisPayload)

	require.Len(t, embRepo.upserts, 1)
	assert.Equal(t, workoutID.String(), embRepo.upserts[0].WorkoutID)
	assert.Equal(t, "swim", embRepo.upserts[0].ActivityType)
}

func TestProcessUploadCompletionFailureKeepsTranscript(t *testing.T) {
	transcript := strings.Repeat("long run around the lake ", 10)
	transcriber := &fakeTranscriber{result: speech.Result{Text: transcript}}
	completions := &fakeCompletion{err: errors.New("rate limited")}
	svc, repo, _, userID, workoutID := voiceFixture(t, transcriber, completions)

	resp, err := svc.ProcessUpload(context.Background(), userID, workoutID, []byte("audio"))
	require.NoError(t, err)

	assert.Equal(t, transcript, resp.Transcript)
	assert.Contains(t, resp.Analysis.Markdown, transcript)
	assert.Contains(t, resp.AnalysisError, "rate limited")
	assert.Equal(t, Truncate(transcript, 100), resp.Summary)
	assert.Len(t, resp.Summary, 100)

	require.NotNil(t, repo.updated)
	assert.Equal(t, transcript, repo.updated.Transcription)
	assert.Contains(t, repo.updated.AnalysisPayload, transcript)
}

func TestProcessUploadTranscriptionFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("provider down")}
	svc, repo, _, userID, workoutID := voiceFixture(t, transcriber, &fakeCompletion{})

	_, err := svc.ProcessUpload(context.Background(), userID, workoutID, []byte("audio"))

	assert.ErrorIs(t, err, utils.ErrTranscriptionFailed)
	assert.Nil(t, repo.updated)
}

func TestProcessUploadUnknownWorkout(t *testing.T) {
	svc, _, _, userID, _ := voiceFixture(t, &fakeTranscriber{}, &fakeCompletion{})

	_, err := svc.ProcessUpload(context.Background(), userID, uuid.New(), []byte("audio"))

	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}

func TestProcessUploadPlaceholderSkipsEmbedding(t *testing.T) {
	transcriber := &fakeTranscriber{result: speech.Result{Text: speech.PlaceholderTranscript}}
	completions := &fakeCompletion{response: "# Quiet note"}
	svc, _, embRepo, userID, workoutID := voiceFixture(t, transcriber, completions)

	_, err := svc.ProcessUpload(context.Background(), userID, workoutID, []byte("audio"))
	require.NoError(t, err)

	assert.Empty(t, embRepo.upserts)
}

func TestReanalyzeRejectsEmptyTranscription(t *testing.T) {
	svc, _, _, userID, workoutID := voiceFixture(t, &fakeTranscriber{}, &fakeCompletion{})

	_, err := svc.Reanalyze(context.Background(), userID, workoutID, "   ")

	assert.ErrorIs(t, err, utils.ErrEmptyTranscription)
}

func TestReanalyzeOverwritesAnalysis(t *testing.T) {
	completions := &fakeCompletion{response: "# Fresh take"}
	svc, repo, _, userID, workoutID := voiceFixture(t, &fakeTranscriber{}, completions)

	resp, err := svc.Reanalyze(context.Background(), userID, workoutID, "easy spin, legs felt heavy")
	require.NoError(t, err)

	assert.Equal(t, "Fresh take", resp.Summary)
	assert.Equal(t, "easy spin, legs felt heavy", repo.updated.Transcription)
}

func TestUpdateAnalysisVerbatim(t *testing.T) {
	svc, repo, _, userID, workoutID := voiceFixture(t, &fakeTranscriber{}, &fakeCompletion{})

	edited := "## My own notes\n\nI know better than the model."
	analysis, err := svc.UpdateAnalysis(context.Background(), userID, workoutID, edited)
	require.NoError(t, err)

	assert.Equal(t, edited, analysis.Markdown)
	assert.NotZero(t, analysis.EditedAt)
	assert.Equal(t, edited, repo.updated.AnalysisPayload)
}

func TestUpdateAnalysisUnknownWorkout(t *testing.T) {
	svc, _, _, userID, _ := voiceFixture(t, &fakeTranscriber{}, &fakeCompletion{})

	_, err := svc.UpdateAnalysis(context.Background(), userID, uuid.New(), "notes")

	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}

func TestParseWorkoutStructured(t *testing.T) {
	transcriber := &fakeTranscriber{result: speech.Result{Text: "400 free warmup then 8x100 on 1:30"}}
	completions := &fakeCompletion{response: `{"sets":[{"type":"warmup","distance":400,"stroke":"freestyle"},{"type":"main","distance":800,"interval":"1:30"}],"confidence":0.9}`}
	svc, _, _, _, _ := voiceFixture(t, transcriber, completions)

	resp, err := svc.ParseWorkout(context.Background(), []byte("audio"))
	require.NoError(t, err)

	require.Len(t, resp.Sets, 2)
	assert.Equal(t, 0.9, resp.Confidence)
	assert.False(t, resp.RequiresReview)
}

func TestParseWorkoutLowConfidenceFlagsReview(t *testing.T) {
	transcriber := &fakeTranscriber{result: speech.Result{Text: "mumbled something"}}
	completions := &fakeCompletion{response: `{"sets":[{"type":"main"}],"confidence":0.3}`}
	svc, _, _, _, _ := voiceFixture(t, transcriber, completions)

	resp, err := svc.ParseWorkout(context.Background(), []byte("audio"))
	require.NoError(t, err)

	assert.True(t, resp.RequiresReview)
}

func TestParseWorkoutMalformedJSONDowngrades(t *testing.T) {
	transcriber := &fakeTranscriber{result: speech.Result{Text: "did some laps"}}
	completions := &fakeCompletion{response: "Sure! Here are the sets you asked for..."}
	svc, _, _, _, _ := voiceFixture(t, transcriber, completions)

	resp, err := svc.ParseWorkout(context.Background(), []byte("audio"))
	require.NoError(t, err)

	assert.Equal(t, "did some laps", resp.Transcript)
	assert.Empty(t, resp.Sets)
	assert.True(t, resp.RequiresReview)
}

func TestParseStructuredSetsStripsFences(t *testing.T) {
	parsed, err := ParseStructuredSets("```json\n{\"sets\":[{\"type\":\"main\"}],\"confidence\":0.8}\n```")
	require.NoError(t, err)

	assert.Len(t, parsed.Sets, 1)
	assert.Equal(t, 0.8, parsed.Confidence)
}

func TestParseStructuredSetsRejectsEmpty(t *testing.T) {
	_, err := ParseStructuredSets(`{"sets":[],"confidence":0.9}`)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "Tempo run", Summarize("# Tempo run\n\nbody", "transcript"))
	assert.Equal(t, "Tempo run", Summarize("Tempo run", "transcript"))
	assert.Equal(t, "transcript", Summarize("", "transcript"))
	assert.Len(t, Summarize("# "+strings.Repeat("x", 200), "t"), 100)
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("Swam freestyle intervals, freestyle again, hard intervals today.", 3)

	assert.Equal(t, []string{"freestyle", "intervals", "again"}, keywords)
}
