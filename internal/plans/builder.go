package plans

import (
	"context"
	"fmt"

	"github.com/2beens/fitplanner/internal/ai"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// PlanBuilder asks the model for one week of a plan and parses the answer.
type PlanBuilder struct {
	generator ai.Generator
}

func NewPlanBuilder(generator ai.Generator) *PlanBuilder {
	return &PlanBuilder{
		generator: generator,
	}
}

func (b *PlanBuilder) Build(ctx context.Context, params PromptParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.builder.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.type", string(params.Type)),
		attribute.Int("plan.week", params.Week),
		attribute.String("plan.tier", string(DifficultyTierFor(params.Week, params.TotalWeeks))),
	)

	systemPrompt, prompt := BuildPrompt(params)
	raw, err := b.generator.Generate(ctx, ai.Request{
		PlanType:     string(params.Type),
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s plan: %w", params.Type, err)
	}

	plan, err := ParsePlan(params.Type, raw)
	if err != nil {
		return nil, err
	}
	plan.UserID = params.Profile.UserID
	plan.Week = params.Week

	return plan, nil
}
