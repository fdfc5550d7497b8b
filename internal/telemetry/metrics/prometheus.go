package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on /metrics. Next to the runtime
// collectors it exposes <namespace>_app_info{version} so dashboards can tell
// deploys apart, plus any extra collectors like the db pool stats.
func SetupPrometheus(namespace, version string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)

	version = strings.TrimSpace(version)
	if version == "" {
		version = "dev"
	}
	appInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "app_info",
		Help:        "Always 1, labelled with the running version",
		ConstLabels: prometheus.Labels{"version": version},
	})
	appInfo.Set(1)
	promRegistry.MustRegister(appInfo)

	for _, c := range extraCollectors {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}
