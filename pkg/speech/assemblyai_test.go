package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assemblyAIStub serves the three-step protocol, returning the queued
// statuses in order and then the final one forever.
type assemblyAIStub struct {
	mu       sync.Mutex
	statuses []transcriptResponse
	polls    int
}

func (s *assemblyAIStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(uploadResponse{UploadURL: "https://cdn.example/blob"})
	})
	mux.HandleFunc("/transcript", func(w http.ResponseWriter, r *http.Request) {
		var req transcriptRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.AudioURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(transcriptResponse{ID: "job-1", Status: "queued"})
	})
	mux.HandleFunc("/transcript/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/job-1") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.mu.Lock()
		idx := s.polls
		if idx >= len(s.statuses) {
			idx = len(s.statuses) - 1
		}
		s.polls++
		resp := s.statuses[idx]
		s.mu.Unlock()
		json.NewEncoder(w).Encode(resp)
	})
	return mux
}

func newTestClient(baseURL string, maxPolls int) *AssemblyAIClient {
	return &AssemblyAIClient{
		apiKey:       "test-key",
		baseURL:      baseURL,
		httpClient:   &http.Client{},
		pollInterval: time.Millisecond,
		maxPolls:     maxPolls,
	}
}

func TestTranscribeCompletes(t *testing.T) {
	stub := &assemblyAIStub{statuses: []transcriptResponse{
		{ID: "job-1", Status: "queued"},
		{ID: "job-1", Status: "processing"},
		{ID: "job-1", Status: "completed", Text: "ran ten kilometers", LanguageCode: "en", Confidence: 0.94},
	}}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	client := newTestClient(server.URL, 10)

	result, err := client.Transcribe(context.Background(), []byte("audio"), "en")
	require.NoError(t, err)

	assert.Equal(t, "ran ten kilometers", result.Text)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, 0.94, result.Confidence)
	assert.GreaterOrEqual(t, stub.polls, 3)
}

func TestTranscribeEmptyTextGetsPlaceholder(t *testing.T) {
	stub := &assemblyAIStub{statuses: []transcriptResponse{
		{ID: "job-1", Status: "completed", Text: ""},
	}}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	client := newTestClient(server.URL, 10)

	result, err := client.Transcribe(context.Background(), []byte("audio"), "")
	require.NoError(t, err)

	assert.Equal(t, PlaceholderTranscript, result.Text)
}

func TestTranscribeJobError(t *testing.T) {
	stub := &assemblyAIStub{statuses: []transcriptResponse{
		{ID: "job-1", Status: "error", Error: "audio too short"},
	}}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	client := newTestClient(server.URL, 10)

	_, err := client.Transcribe(context.Background(), []byte("audio"), "")

	require.ErrorIs(t, err, ErrJobFailed)
	assert.Contains(t, err.Error(), "audio too short")
}

func TestTranscribePollTimeout(t *testing.T) {
	stub := &assemblyAIStub{statuses: []transcriptResponse{
		{ID: "job-1", Status: "processing"},
	}}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	client := newTestClient(server.URL, 3)

	_, err := client.Transcribe(context.Background(), []byte("audio"), "")

	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 3, stub.polls)
}

func TestTranscribeContextCancel(t *testing.T) {
	stub := &assemblyAIStub{statuses: []transcriptResponse{
		{ID: "job-1", Status: "processing"},
	}}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	client := newTestClient(server.URL, 1000)
	client.pollInterval = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := client.Transcribe(ctx, []byte("audio"), "")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscribeUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 10)

	_, err := client.Transcribe(context.Background(), []byte("audio"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload")
}
