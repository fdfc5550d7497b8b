package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

var (
	ErrMissingAPIKey      = errors.New("missing completion api key")
	ErrRelayNotConfigured = errors.New("relay url not configured")
	ErrEmptyResponse      = errors.New("empty completion response")
	ErrNoStrategies       = errors.New("no generation strategies configured")
)

type Request struct {
	PlanType     string
	SystemPrompt string
	Prompt       string
}

// Generator returns the raw model output for a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Strategy is one way of reaching the model.
type Strategy interface {
	Generator
	Name() string
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// FallbackGenerator tries its strategies in order and returns the first successful response.
type FallbackGenerator struct {
	strategies     []Strategy
	metricsManager *metrics.Manager
}

func NewFallbackGenerator(metricsManager *metrics.Manager, strategies ...Strategy) *FallbackGenerator {
	return &FallbackGenerator{
		strategies:     strategies,
		metricsManager: metricsManager,
	}
}

func (g *FallbackGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if len(g.strategies) == 0 {
		return "", ErrNoStrategies
	}

	var allErrs error
	for _, strategy := range g.strategies {
		start := time.Now()
		content, err := strategy.Generate(ctx, req)
		g.observe(strategy.Name(), start, err)
		if err == nil {
			return content, nil
		}

		log.Warnf("ai generator [%s] failed for %s plan: %s", strategy.Name(), req.PlanType, err)
		allErrs = multierr.Append(allErrs, fmt.Errorf("%s: %w", strategy.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}

	return "", allErrs
}

func (g *FallbackGenerator) observe(strategy string, start time.Time, err error) {
	if g.metricsManager == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	g.metricsManager.CounterAIRequests.With(prometheus.Labels{
		"strategy": strategy,
		"result":   result,
	}).Inc()
	g.metricsManager.HistAIRequestDuration.With(prometheus.Labels{
		"strategy": strategy,
	}).Observe(time.Since(start).Seconds())
}
