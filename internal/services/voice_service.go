package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitlog/internal/models/db_models"
	"fitlog/internal/models/response_models"
	"fitlog/internal/repositories"
	"fitlog/pkg/speech"
	"fitlog/pkg/utils"
)

const (
	analysisPromptName = "workout_analysis"
	setsPromptName     = "workout_sets"
	promptVersion      = "v1"

	summaryMaxLen = 100

	// Structured parses below this confidence are flagged for review even
	// when the JSON was valid.
	reviewConfidenceFloor = 0.6
)

type VoiceServiceInterface interface {
	ProcessUpload(ctx context.Context, userID, workoutID uuid.UUID, audio []byte) (*response_models.VoiceUploadResponse, error)
	Reanalyze(ctx context.Context, userID, workoutID uuid.UUID, transcription string) (*response_models.VoiceUploadResponse, error)
	UpdateAnalysis(ctx context.Context, userID, workoutID uuid.UUID, markdown string) (*response_models.WorkoutAnalysis, error)
	ParseWorkout(ctx context.Context, audio []byte) (*response_models.VoiceParseResponse, error)
}

type VoiceService struct {
	transcriber   speech.Transcriber
	completions   utils.CompletionClientInterface
	embedClient   utils.EmbeddingClientInterface
	prompts       *PromptStore
	workoutRepo   repositories.WorkoutRepositoryInterface
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface
}

func NewVoiceService(
	transcriber speech.Transcriber,
	completions utils.CompletionClientInterface,
	embedClient utils.EmbeddingClientInterface,
	prompts *PromptStore,
	workoutRepo repositories.WorkoutRepositoryInterface,
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface,
) VoiceServiceInterface {
	return &VoiceService{
		transcriber:   transcriber,
		completions:   completions,
		embedClient:   embedClient,
		prompts:       prompts,
		workoutRepo:   workoutRepo,
		embeddingRepo: embeddingRepo,
	}
}

func (s *VoiceService) ProcessUpload(ctx context.Context, userID, workoutID uuid.UUID, audio []byte) (*response_models.VoiceUploadResponse, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	// Nothing to preserve yet, so a transcription failure aborts the
	// request instead of degrading.
	result, err := s.transcriber.Transcribe(ctx, audio, "en")
	if err != nil {
		log.Printf("voice upload: transcription failed: %v", err)
		return nil, utils.ErrTranscriptionFailed
	}

	resp, err := s.analyzeAndPersist(ctx, workout, result.Text)
	if err != nil {
		return nil, err
	}

	s.indexTranscript(ctx, workout, result.Text)
	return resp, nil
}

func (s *VoiceService) Reanalyze(ctx context.Context, userID, workoutID uuid.UUID, transcription string) (*response_models.VoiceUploadResponse, error) {
	if strings.TrimSpace(transcription) == "" {
		return nil, utils.ErrEmptyTranscription
	}

	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	return s.analyzeAndPersist(ctx, workout, transcription)
}

// analyzeAndPersist runs the markdown analysis and overwrites the stored
// transcript + analysis. A completion failure never loses the transcript:
// the persisted analysis becomes a synthetic document embedding it, and the
// response carries the provider error.
func (s *VoiceService) analyzeAndPersist(ctx context.Context, workout *db_models.Workout, transcript string) (*response_models.VoiceUploadResponse, error) {
	markdown, analysisErr := s.analyzeMarkdown(ctx, transcript)

	var summary string
	if analysisErr != nil {
		log.Printf("voice analysis: completion failed: %v", analysisErr)
		markdown = FallbackAnalysis(transcript, analysisErr)
		summary = Truncate(transcript, summaryMaxLen)
	} else {
		summary = Summarize(markdown, transcript)
	}

	now := time.Now().Unix()
	workout.Transcription = transcript
	workout.AnalysisKind = db_models.AnalysisKindMarkdown
	workout.AnalysisPayload = markdown
	workout.AnalysisEditedAt = now

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.VoiceUploadResponse{
		WorkoutID:  workout.ID.String(),
		Transcript: transcript,
		Analysis: response_models.WorkoutAnalysis{
			Kind:     db_models.AnalysisKindMarkdown,
			Markdown: markdown,
			EditedAt: now,
		},
		Summary: summary,
	}
	if analysisErr != nil {
		resp.AnalysisError = analysisErr.Error()
	}
	return resp, nil
}

func (s *VoiceService) analyzeMarkdown(ctx context.Context, transcript string) (string, error) {
	prompt, err := s.prompts.Render(analysisPromptName, promptVersion, map[string]string{
		"Transcript": transcript,
	})
	if err != nil {
		return "", err
	}
	return s.completions.Complete(ctx, prompt)
}

func (s *VoiceService) UpdateAnalysis(ctx context.Context, userID, workoutID uuid.UUID, markdown string) (*response_models.WorkoutAnalysis, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	// Verbatim overwrite; no adapter call on manual edits.
	now := time.Now().Unix()
	workout.AnalysisKind = db_models.AnalysisKindMarkdown
	workout.AnalysisPayload = markdown
	workout.AnalysisEditedAt = now

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.WorkoutAnalysis{
		Kind:     db_models.AnalysisKindMarkdown,
		Markdown: markdown,
		EditedAt: now,
	}, nil
}

func (s *VoiceService) ParseWorkout(ctx context.Context, audio []byte) (*response_models.VoiceParseResponse, error) {
	result, err := s.transcriber.Transcribe(ctx, audio, "en")
	if err != nil {
		log.Printf("voice process: transcription failed: %v", err)
		return nil, utils.ErrTranscriptionFailed
	}

	resp := &response_models.VoiceParseResponse{Transcript: result.Text}

	prompt, err := s.prompts.Render(setsPromptName, promptVersion, map[string]string{
		"Transcript": result.Text,
	})
	if err != nil {
		resp.RequiresReview = true
		return resp, nil
	}

	raw, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		log.Printf("voice process: completion failed: %v", err)
		resp.RequiresReview = true
		return resp, nil
	}

	parsed, err := ParseStructuredSets(raw)
	if err != nil {
		// Strict-JSON contract: a malformed response downgrades to a
		// needs-review result, never a parse error to the caller.
		log.Printf("voice process: unparseable sets payload: %v", err)
		resp.RequiresReview = true
		return resp, nil
	}

	resp.Sets = parsed.Sets
	resp.Confidence = parsed.Confidence
	resp.RequiresReview = parsed.Confidence < reviewConfidenceFloor
	return resp, nil
}

// indexTranscript stores an embedding for similarity search. Best-effort:
// failures are logged and the upload response is unaffected.
func (s *VoiceService) indexTranscript(ctx context.Context, workout *db_models.Workout, transcript string) {
	if transcript == "" || transcript == speech.PlaceholderTranscript {
		return
	}

	vector, err := s.embedClient.GetEmbedding(ctx, transcript)
	if err != nil {
		log.Printf("voice upload: embedding failed: %v", err)
		return
	}

	embedding := &db_models.WorkoutEmbedding{
		WorkoutID:    workout.ID.String(),
		UserID:       workout.UserID.String(),
		ActivityType: workout.ActivityType,
		Keywords:     ExtractKeywords(transcript, 8),
		Embedding:    vector,
	}
	if err := s.embeddingRepo.Upsert(ctx, embedding); err != nil {
		log.Printf("voice upload: embedding upsert failed: %v", err)
	}
}

type StructuredSets struct {
	Sets       []response_models.WorkoutSet `json:"sets"`
	Confidence float64                      `json:"confidence"`
}

// ParseStructuredSets decodes the strict-JSON sets contract, tolerating the
// code fences some models wrap around JSON output.
func ParseStructuredSets(raw string) (*StructuredSets, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed StructuredSets
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Sets) == 0 {
		return nil, fmt.Errorf("no sets in payload")
	}
	return &parsed, nil
}

// FallbackAnalysis preserves the raw transcript as a markdown document when
// the completion provider fails.
func FallbackAnalysis(transcript string, analysisErr error) string {
	return fmt.Sprintf("# Workout Notes\n\n%s\n\n---\n\n*Automatic analysis unavailable: %s*\n", transcript, analysisErr)
}

// Summarize derives the one-line summary: first line of the markdown with
// any leading heading marker stripped, falling back to the transcript.
func Summarize(markdown, transcript string) string {
	line := markdown
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
	if line == "" {
		return Truncate(transcript, summaryMaxLen)
	}
	return Truncate(line, summaryMaxLen)
}

func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ExtractKeywords pulls distinct longer words from the transcript for the
// embedding row; purely cosmetic metadata for the similar-workouts listing.
func ExtractKeywords(transcript string, max int) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(transcript)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if len(word) < 5 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) >= max {
			break
		}
	}
	return keywords
}
