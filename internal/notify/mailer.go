package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/resend/resend-go/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	kindPasswordReset = "password_reset"
	kindPlanRenewed   = "plan_renewed"
)

var (
	passwordResetTemplate = template.Must(template.New("reset").Parse(
		`<p>Hi {{.Name}},</p>
<p>Someone asked to reset your FitPlanner password. If it was you, follow the link below. It is valid for one hour.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not ask for this, ignore this email.</p>`))

	planRenewedTemplate = template.Must(template.New("renewed").Parse(
		`<p>Hi {{.Name}},</p>
<p>Your {{.PlanType}} plan for week {{.Week}} of {{.TotalWeeks}} is ready.</p>
<p><a href="{{.Link}}">Open FitPlanner</a></p>`))
)

// Mailer sends transactional emails through Resend. Without an API key
// emails are only logged.
type Mailer struct {
	client         *resend.Client
	from           string
	appBaseURL     string
	metricsManager *metrics.Manager
}

func NewMailer(apiKey, from, appBaseURL string, metricsManager *metrics.Manager) *Mailer {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	} else {
		log.Warnln("resend api key not set, emails will only be logged")
	}
	if from == "" {
		from = "FitPlanner <no-reply@fitplanner.app>"
	}
	return &Mailer{
		client:         client,
		from:           from,
		appBaseURL:     appBaseURL,
		metricsManager: metricsManager,
	}
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.appBaseURL, url.QueryEscape(resetToken))
	html, err := render(passwordResetTemplate, map[string]string{
		"Name": name,
		"Link": link,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, kindPasswordReset, to, "Reset your FitPlanner password", html)
}

func (m *Mailer) SendPlanRenewed(ctx context.Context, to, name, planType string, week, totalWeeks int) error {
	html, err := render(planRenewedTemplate, map[string]any{
		"Name":       name,
		"PlanType":   planType,
		"Week":       week,
		"TotalWeeks": totalWeeks,
		"Link":       m.appBaseURL + "/plans/" + planType,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your week %d %s plan is ready", week, planType)
	return m.send(ctx, kindPlanRenewed, to, subject, html)
}

func (m *Mailer) send(ctx context.Context, kind, to, subject, html string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mailer.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		result := "ok"
		if err != nil {
			result = "error"
		}
		if m.metricsManager != nil {
			m.metricsManager.CounterEmailsSent.WithLabelValues(kind, result).Inc()
		}
	}()
	span.SetAttributes(attribute.String("email.kind", kind))

	if m.client == nil {
		log.Infof("[mock email] %s to %s: %s", kind, to, subject)
		return nil
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	log.Debugf("sent %s email, id: %s", kind, sent.Id)
	return nil
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
