package textgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yt-autopublish/domain/dto"

	"github.com/google/go-querystring/query"
)

// ErrEmptyGeneration is returned when the service answers 200 with no text
var ErrEmptyGeneration = errors.New("text generation returned no text")

const maxResponseBytes = 64 << 10

// Config represents text generation service configuration
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls a text generation API that takes the prompt in the URL path
// and a seed in the query string.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	seed       func() int
}

func NewTextGenClient(config *Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		model:      config.Model,
		httpClient: &http.Client{Timeout: config.Timeout},
		seed:       func() int { return rand.Intn(1_000_000_000) },
	}
}

// WithSeed replaces the random seed source (fluent)
func (c *Client) WithSeed(seed func() int) *Client {
	c.seed = seed
	return c
}

// Generate returns the generated text for prompt. A fresh seed per call keeps
// the service from handing back a cached answer.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}
	values, err := query.Values(dto.TextGenerationQuery{Seed: c.seed(), Model: c.model, Private: true})
	if err != nil {
		return "", fmt.Errorf("encode text generation query: %w", err)
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(prompt), values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build text generation request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read text generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation failed: status %d", resp.StatusCode)
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}
