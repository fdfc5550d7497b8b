package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterPlansGenerated      *prometheus.CounterVec
	CounterPlanRenewals        *prometheus.CounterVec
	CounterAIRequests          *prometheus.CounterVec
	CounterCheckouts           *prometheus.CounterVec
	CounterEmailsSent          *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistAIRequestDuration    *prometheus.HistogramVec
	HistRenewalSweepDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitplanner", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitplanner", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterPlansGenerated := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plans_generated",
		Help:      "The total number of generated plans",
	}, []string{"type", "result"})
	counterPlanRenewals := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plan_renewals",
		Help:      "The total number of plan renewal attempts",
	}, []string{"type", "result"})
	counterAIRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ai_requests",
		Help:      "The total number of completion requests per strategy",
	}, []string{"strategy", "result"})
	counterCheckouts := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "checkouts",
		Help:      "The total number of checkout attempts",
	}, []string{"result"})
	counterEmailsSent := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "emails_sent",
		Help:      "The total number of sent emails",
	}, []string{"kind", "result"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"route", "method", "status_code"})
	histAIRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of a single completion request in seconds",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60, 90},
	}, []string{"strategy"})
	histRenewalSweepDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "renewal_sweep_duration_seconds",
		Help:      "Total duration of a scheduled renewal sweep in seconds",
		Buckets:   []float64{0.01, 0.1, 1, 10, 60, 120, 300, 600, 1800},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterPlansGenerated:      counterPlansGenerated,
		CounterPlanRenewals:        counterPlanRenewals,
		CounterAIRequests:          counterAIRequests,
		CounterCheckouts:           counterCheckouts,
		CounterEmailsSent:          counterEmailsSent,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistAIRequestDuration:      histAIRequestDuration,
		HistRenewalSweepDuration:   histRenewalSweepDuration,
	}
}
