package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const maxResponseBytes = 2 << 20

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CompletionClient talks to an OpenAI compatible chat completions API directly.
type CompletionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewCompletionClient(baseURL, apiKey, model string, httpClient *http.Client) *CompletionClient {
	return &CompletionClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

func (c *CompletionClient) Name() string {
	return "direct"
}

func (c *CompletionClient) Generate(ctx context.Context, req Request) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.direct.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.type", req.PlanType),
		attribute.String("ai.model", c.model),
	)

	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatCompletionRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    0.7,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("completion api responded with status %d: %s", resp.StatusCode, truncate(respBytes, 200))
		}
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("completion api responded with status %d: %s", resp.StatusCode, completion.Error.Message)
		}
		return "", fmt.Errorf("completion api responded with status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return completion.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
