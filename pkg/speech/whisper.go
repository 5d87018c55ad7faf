package speech

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperTranscriber is the synchronous provider: one call with the audio
// payload and language hint, transcript comes back directly.
type WhisperTranscriber struct {
	client *openai.Client
}

func NewWhisperTranscriber(apiKey string) *WhisperTranscriber {
	return &WhisperTranscriber{client: openai.NewClient(apiKey)}
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (Result, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: "voice-note.webm",
		Language: languageHint,
	})
	if err != nil {
		return Result{}, fmt.Errorf("whisper transcription: %w", err)
	}

	text := resp.Text
	if text == "" {
		text = PlaceholderTranscript
	}
	return Result{Text: text, Language: languageHint}, nil
}
