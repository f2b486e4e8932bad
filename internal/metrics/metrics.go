// Package metrics counts what happens during a run with Prometheus
// collectors and exports them in the node-exporter textfile format.
package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/confgen/pkg/domain"
)

const namespace = "confgen"

// Recorder owns a private registry so that several runs in one process
// (tests) never collide on the default registerer.
type Recorder struct {
	registry *prometheus.Registry

	prompts        *prometheus.CounterVec
	resolved       *prometheus.CounterVec
	failures       *prometheus.CounterVec
	promptDuration *prometheus.HistogramVec
	runDuration    prometheus.Gauge
	runSuccess     prometheus.Gauge

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		prompts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_total",
			Help:      "Options asked for, by option type.",
		}, []string{"type"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "options_resolved_total",
			Help:      "Options resolved, by option type and value source.",
		}, []string{"type", "source"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "option_failures_total",
			Help:      "Options that aborted the run, by reason.",
		}, []string{"reason"}),
		promptDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prompt_duration_seconds",
			Help:      "Time spent waiting for an option value.",
			Buckets:   []float64{0.01, 0.1, 1, 5, 15, 60, 300},
		}, []string{"type"}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run wrote its output, 0 otherwise.",
		}),
		pending: make(map[string]time.Time),
	}

	r.registry.MustRegister(r.prompts, r.resolved, r.failures, r.promptDuration, r.runDuration, r.runSuccess)
	return r
}

// Hooks returns collector hooks feeding this recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPrompt: func(_ context.Context, e *domain.OptionEvent) {
			r.prompts.WithLabelValues(string(e.OptionType)).Inc()
			r.mu.Lock()
			r.pending[e.OptionID] = e.Timestamp
			r.mu.Unlock()
		},
		OnResolve: func(_ context.Context, e *domain.OptionEvent) {
			source := "input"
			if e.UsedDefault {
				source = "default"
			}
			r.resolved.WithLabelValues(string(e.OptionType), source).Inc()
			r.observePrompt(e)
		},
		OnFailure: func(_ context.Context, e *domain.OptionEvent) {
			r.failures.WithLabelValues(FailureReason(e.Err)).Inc()
			r.observePrompt(e)
		},
	}
}

func (r *Recorder) observePrompt(e *domain.OptionEvent) {
	r.mu.Lock()
	started, ok := r.pending[e.OptionID]
	delete(r.pending, e.OptionID)
	r.mu.Unlock()
	if ok {
		r.promptDuration.WithLabelValues(string(e.OptionType)).Observe(e.Timestamp.Sub(started).Seconds())
	}
}

// ObserveRun records the outcome of a whole run.
func (r *Recorder) ObserveRun(d time.Duration, err error) {
	r.runDuration.Set(d.Seconds())
	if err != nil {
		r.runSuccess.Set(0)
		return
	}
	r.runSuccess.Set(1)
}

// WriteTextfile writes the current values to path in the text exposition
// format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// FailureReason maps a collection error to a low-cardinality label.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrMissingRequiredValue):
		return "missing_value"
	case errors.Is(err, domain.ErrCoercion):
		return "coercion"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "prompt"
	}
}
