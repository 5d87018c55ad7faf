package speech

import (
	"context"
	"errors"
)

// PlaceholderTranscript is stored when a provider completes without
// recognizing any speech, so downstream code never sees an empty transcript.
const PlaceholderTranscript = "(no speech detected)"

var (
	ErrJobFailed   = errors.New("transcription job failed")
	ErrPollTimeout = errors.New("transcription did not complete in time")
)

type Result struct {
	Text       string
	Language   string
	Confidence float64
}

// Transcriber converts an encoded audio blob to text. Implementations fail
// closed: any network or provider error surfaces as a non-nil error and the
// caller decides between a fallback placeholder and aborting the request.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageHint string) (Result, error)
}

// Unconfigured stands in when no provider key is set, keeping the server
// bootable without voice support.
type Unconfigured struct{}

func (Unconfigured) Transcribe(context.Context, []byte, string) (Result, error) {
	return Result{}, errors.New("no transcription provider configured")
}
