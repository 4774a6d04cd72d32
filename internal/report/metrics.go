package report

import (
	"fmt"

	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gitwip"

// WriteMetrics exports rr as a Prometheus textfile at path.
func WriteMetrics(path string, rr *repos.RunReport) error {
	registry := prometheus.NewRegistry()

	repositories := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "repositories",
		Help:      "Number of repositories per summary bucket.",
	}, []string{"bucket"})
	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "repositories_total",
		Help:      "Number of repositories inspected.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the scan.",
	})

	registry.MustRegister(repositories, total, duration)

	for _, bucket := range repos.Buckets {
		repositories.WithLabelValues(string(bucket)).Set(float64(rr.Count(bucket)))
	}
	total.Set(float64(len(rr.Records)))
	duration.Set(rr.Duration().Seconds())

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}
