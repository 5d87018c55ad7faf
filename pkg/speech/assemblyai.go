package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	assemblyAIBaseURL   = "https://api.assemblyai.com/v2"
	defaultPollInterval = 5 * time.Second
	defaultMaxPolls     = 60
)

// AssemblyAIClient drives the provider's three-step asynchronous protocol:
// upload the raw bytes, submit a transcription job against the returned
// upload URL, then poll the job until it completes or errors. The poll is a
// ticker select against ctx, so an abandoned caller cancels the wait instead
// of leaking it.
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	maxPolls     int
}

func NewAssemblyAIClient(apiKey string) *AssemblyAIClient {
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      assemblyAIBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
	}
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptRequest struct {
	AudioURL     string `json:"audio_url"`
	LanguageCode string `json:"language_code,omitempty"`
}

type transcriptResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Text         string  `json:"text"`
	LanguageCode string  `json:"language_code"`
	Confidence   float64 `json:"confidence"`
	Error        string  `json:"error"`
}

func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, languageHint string) (Result, error) {
	uploadURL, err := c.upload(ctx, audio)
	if err != nil {
		return Result{}, err
	}

	jobID, err := c.submit(ctx, uploadURL, languageHint)
	if err != nil {
		return Result{}, err
	}

	return c.poll(ctx, jobID)
}

func (c *AssemblyAIClient) upload(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var resp uploadResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("assemblyai upload: %w", err)
	}
	if resp.UploadURL == "" {
		return "", fmt.Errorf("assemblyai upload: empty upload_url")
	}
	return resp.UploadURL, nil
}

func (c *AssemblyAIClient) submit(ctx context.Context, uploadURL, languageHint string) (string, error) {
	body, err := json.Marshal(transcriptRequest{
		AudioURL:     uploadURL,
		LanguageCode: languageHint,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var resp transcriptResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("assemblyai submit: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("assemblyai submit: empty job id")
	}
	return resp.ID, nil
}

func (c *AssemblyAIClient) poll(ctx context.Context, jobID string) (Result, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < c.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-ticker.C:
		}

		status, err := c.jobStatus(ctx, jobID)
		if err != nil {
			return Result{}, err
		}

		switch status.Status {
		case "completed":
			text := status.Text
			if text == "" {
				text = PlaceholderTranscript
			}
			return Result{
				Text:       text,
				Language:   status.LanguageCode,
				Confidence: status.Confidence,
			}, nil
		case "error":
			return Result{}, fmt.Errorf("%w: %s", ErrJobFailed, status.Error)
		}
		// queued / processing: keep waiting
	}

	return Result{}, ErrPollTimeout
}

func (c *AssemblyAIClient) jobStatus(ctx context.Context, jobID string) (transcriptResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return transcriptResponse{}, err
	}
	req.Header.Set("Authorization", c.apiKey)

	var resp transcriptResponse
	if err := c.do(req, &resp); err != nil {
		return transcriptResponse{}, fmt.Errorf("assemblyai poll: %w", err)
	}
	return resp, nil
}

func (c *AssemblyAIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
