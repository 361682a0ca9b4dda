package nanobanana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"neuroad-server/config"
	"neuroad-server/pkg/logger"
)

const (
	defaultBaseURL = "https://api.kie.ai"
	taskModel      = "nano-banana-pro"

	createTaskPath = "/api/v1/jobs/createTask"
	recordInfoPath = "/api/v1/jobs/recordInfo"

	// Fixed poll schedule: 2s ticks, up to ~2 minutes. There is no backoff;
	// this is a wait-for-completion loop, not an error retry.
	defaultPollInterval    = 2 * time.Second
	defaultMaxPollAttempts = 60
)

// ErrAPIKeyNotConfigured is returned when no kie.ai credential is set. It is
// a fatal configuration error, never retried.
var ErrAPIKeyNotConfigured = errors.New("KIE_AI_API_KEY not configured")

// Client drives Nano Banana Pro create-then-poll image generation tasks.
type Client struct {
	apiKey          string
	baseURL         string
	httpClient      *http.Client
	pollInterval    time.Duration
	maxPollAttempts int
}

func NewClient(cfg *config.Config) *Client {
	baseURL := strings.TrimRight(cfg.KieAI.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:          cfg.KieAI.APIKey,
		baseURL:         baseURL,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		pollInterval:    defaultPollInterval,
		maxPollAttempts: defaultMaxPollAttempts,
	}
}

type createTaskRequest struct {
	Model string    `json:"model"`
	Input taskInput `json:"input"`
}

type taskInput struct {
	Prompt       string   `json:"prompt"`
	ImageInput   []string `json:"image_input"`
	AspectRatio  string   `json:"aspect_ratio"`
	Resolution   string   `json:"resolution"`
	OutputFormat string   `json:"output_format"`
}

type apiResponse struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Data taskData `json:"data"`
}

type taskData struct {
	TaskID     string `json:"taskId"`
	State      string `json:"state"`
	ResultJSON string `json:"resultJson"`
	FailMsg    string `json:"failMsg"`
}

type taskResult struct {
	ResultURLs []string `json:"resultUrls"`
}

// GenerateImage creates a remote generation task and polls it to a terminal
// state. It resolves to the first result URL, or "" when the task fails,
// times out or returns an unusable payload; those outcomes are logged, not
// raised. The only error is a missing credential.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyNotConfigured
	}

	payload := createTaskRequest{
		Model: taskModel,
		Input: taskInput{
			Prompt:       prompt,
			ImageInput:   []string{},
			AspectRatio:  aspectRatio,
			Resolution:   "1K",
			OutputFormat: "png",
		},
	}

	created, err := c.postJSON(ctx, c.baseURL+createTaskPath, payload)
	if err != nil {
		logger.Errorf("Nano Banana Pro create task failed: %v", err)
		return "", nil
	}
	if created.Code != 200 {
		logger.Errorf("Nano Banana Pro error: %s", created.Msg)
		return "", nil
	}

	taskID := created.Data.TaskID
	if taskID == "" {
		logger.Error("No taskId returned from Nano Banana Pro")
		return "", nil
	}

	return c.pollTask(ctx, taskID), nil
}

// pollTask waits for a terminal task state. Transport-level poll failures
// are skipped, not counted as terminal.
func (c *Client) pollTask(ctx context.Context, taskID string) string {
	checkURL := fmt.Sprintf("%s%s?taskId=%s", c.baseURL, recordInfoPath, taskID)

	for attempt := 0; attempt < c.maxPollAttempts; attempt++ {
		time.Sleep(c.pollInterval)

		status, err := c.getJSON(ctx, checkURL)
		if err != nil || status.Code != 200 {
			continue
		}

		switch status.Data.State {
		case "success":
			return firstResultURL(status.Data.ResultJSON)
		case "failed":
			logger.Errorf("Nano Banana Pro task failed: %s", status.Data.FailMsg)
			return ""
		}
	}

	logger.Error("Nano Banana Pro task timed out")
	return ""
}

// firstResultURL extracts the first result URL from the embedded result
// payload. Malformed payloads resolve to "".
func firstResultURL(resultJSON string) string {
	var result taskResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		logger.Errorf("Error parsing Nano Banana Pro result: %v", err)
		return ""
	}
	if len(result.ResultURLs) == 0 {
		return ""
	}
	return result.ResultURLs[0]
}

// Download fetches the raw bytes of a generated asset.
func (c *Client) Download(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req)
}

func (c *Client) getJSON(ctx context.Context, url string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.doJSON(req)
}

func (c *Client) doJSON(req *http.Request) (*apiResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded apiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}
