package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates job outcomes for Prometheus.
type Metrics struct {
	Jobs     *prometheus.CounterVec
	Trials   prometheus.Counter
	Flips    prometheus.Counter
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "convchain_jobs_total",
			Help: "Synthesis jobs by outcome.",
		}, []string{"status"}),
		Trials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "convchain_trials_total",
			Help: "Proposed single-cell flips.",
		}),
		Flips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "convchain_flips_total",
			Help: "Accepted single-cell flips.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "convchain_job_duration_seconds",
			Help:    "Wall time of one synthesis job.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.Jobs, m.Trials, m.Flips, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished job. A nil receiver is a no-op.
func (m *Metrics) observe(res Result, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Jobs.WithLabelValues(status).Inc()
	m.Trials.Add(float64(res.Stats.Trials))
	m.Flips.Add(float64(res.Stats.Flips))
	if err == nil {
		m.Duration.Observe(res.Elapsed.Seconds())
	}
}
