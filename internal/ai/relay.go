package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const relaySecretHeader = "X-Relay-Secret"

type relayRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
	Model        string `json:"model"`
	PlanType     string `json:"planType"`
}

type relayResponse struct {
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// RelayClient calls the backend proxy which holds the real API key.
type RelayClient struct {
	url        string
	secret     string
	model      string
	httpClient *http.Client
}

func NewRelayClient(url, secret, model string, httpClient *http.Client) *RelayClient {
	return &RelayClient{
		url:        url,
		secret:     secret,
		model:      model,
		httpClient: httpClient,
	}
}

func (c *RelayClient) Name() string {
	return "relay"
}

func (c *RelayClient) Generate(ctx context.Context, req Request) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.relay.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.type", req.PlanType))

	if c.url == "" {
		return "", ErrRelayNotConfigured
	}

	body, err := json.Marshal(relayRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		Model:        c.model,
		PlanType:     req.PlanType,
	})
	if err != nil {
		return "", fmt.Errorf("marshal relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		httpReq.Header.Set(relaySecretHeader, c.secret)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read relay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay responded with status %d: %s", resp.StatusCode, truncate(respBytes, 200))
	}

	var relayResp relayResponse
	if err := json.Unmarshal(respBytes, &relayResp); err != nil {
		return "", fmt.Errorf("unmarshal relay response: %w", err)
	}
	if relayResp.Error != "" {
		return "", fmt.Errorf("relay error: %s", relayResp.Error)
	}
	if relayResp.Content == "" {
		return "", ErrEmptyResponse
	}

	return relayResp.Content, nil
}
