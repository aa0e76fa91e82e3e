// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mchmarny/discovery/pkg/config"
	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
)

const (
	providerName       = "openai"
	completionsPath    = "/chat/completions"
	maxErrorBodyBytes  = 4 << 10
	maxResponseBytes   = 1 << 20
	roleSystem         = "system"
	roleUser           = "user"
	headerAuthorize    = "Authorization"
	headerContentType  = "Content-Type"
	contentTypeJSON    = "application/json"
	userAgent          = "discovery-llm/1.0"
	errorBodyTruncated = "..."
)

// Request is a single completion request.
type Request struct {
	System string
	User   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxTokens overrides the completion size cap.
func WithMaxTokens(n int) Option {
	return func(c *Client) {
		c.maxTokens = n
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Client) {
		c.temperature = t
	}
}

// Client calls the chat completions endpoint. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
}

// NewClient returns a Client for the given settings. Empty model and base URL
// fall back to the config package defaults.
func NewClient(cfg config.OpenAI, opts ...Option) *Client {
	c := &Client{
		httpClient:  newHTTPClient(),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		maxTokens:   defaults.LLMMaxTokens,
		temperature: defaults.LLMTemperature,
	}
	if c.model == "" {
		c.model = config.DefaultOpenAIModel
	}
	if c.baseURL == "" {
		c.baseURL = config.DefaultOpenAIBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client has a credential.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Complete sends req and returns the text content of the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, req)
	observeCompletion(cerrors.CodeOf(err), err == nil, time.Since(start))
	return text, err
}

func (c *Client) complete(ctx context.Context, req Request) (string, error) {
	if !c.Configured() {
		return "", cerrors.New(cerrors.ErrCodeUnauthorized, "language model API key not configured")
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: roleSystem, Content: req.System},
			{Role: roleUser, Content: req.User},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, "failed to marshal completion request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(b))
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, "failed to create completion request", err)
	}
	httpReq.Header.Set(headerContentType, contentTypeJSON)
	httpReq.Header.Set(headerAuthorize, "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", classifyStatus(resp.StatusCode, readErrorMessage(resp.Body), c.model)
	}

	var cr chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&cr); err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInvalidResponse, "failed to decode completion response", err)
	}
	if len(cr.Choices) == 0 {
		return "", cerrors.New(cerrors.ErrCodeInvalidResponse, "completion response has no choices")
	}

	return cr.Choices[0].Message.Content, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return cerrors.Wrap(cerrors.ErrCodeTimeout, "completion request timed out", err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return cerrors.Wrap(cerrors.ErrCodeTimeout, "completion request timed out", err)
	}
	return cerrors.Wrap(cerrors.ErrCodeUnavailable, "completion request failed", err)
}

func classifyStatus(status int, message, model string) error {
	var code cerrors.ErrorCode
	switch {
	case status == http.StatusTooManyRequests:
		code = cerrors.ErrCodeRateLimitExceeded
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = cerrors.ErrCodeUnauthorized
	case status >= 500:
		code = cerrors.ErrCodeUnavailable
	default:
		code = cerrors.ErrCodeInvalidRequest
	}

	return cerrors.NewWithContext(code,
		fmt.Sprintf("%s API error (HTTP %d): %s", providerName, status, message),
		map[string]any{
			"provider": providerName,
			"status":   status,
			"model":    model,
		})
}

// readErrorMessage extracts the API error message, falling back to the
// truncated raw body.
func readErrorMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes+1))
	if len(data) == 0 {
		return "empty error body"
	}

	var eb apiErrorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}

	msg := strings.TrimSpace(string(data))
	if len(msg) > maxErrorBodyBytes {
		msg = msg[:maxErrorBodyBytes] + errorBodyTruncated
	}
	return msg
}
