// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes solver progress as Prometheus metrics: a
// counter of accepted corrections, a counter of graveyarded triples by
// rejection reason, and a gauge for the current solver iteration. This
// is ambient observability, carried even though spec.md's Non-goals
// exclude a plugin/GUI surface — metrics are not a GUI.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ohshitgorillas/entroppy-go/internal/solver"
)

// Collector wraps the process-wide Prometheus metrics a solve run
// updates as it progresses.
type Collector struct {
	accepted    prometheus.Counter
	graveyarded *prometheus.CounterVec
	iteration   prometheus.Gauge
}

// NewCollector registers a fresh set of metrics against reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the default
// global registry across test runs.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		accepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "entroppy_corrections_accepted_total",
			Help: "Total number of corrections promoted to active (direct or pattern).",
		}),
		graveyarded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entroppy_corrections_graveyarded_total",
			Help: "Total number of triples rejected, labeled by reason.",
		}, []string{"reason"}),
		iteration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "entroppy_solver_iteration",
			Help: "Current solver iteration number.",
		}),
	}
}

// Observe updates every metric from a state snapshot taken after an
// iteration completes.
func (c *Collector) Observe(iteration int, counts solver.Counts, byReason map[solver.RejectionReason]int) {
	c.iteration.Set(float64(iteration))
	c.accepted.Add(0) // ensure the series exists even on a no-op iteration
	for reason, n := range byReason {
		c.graveyarded.WithLabelValues(string(reason)).Add(float64(n))
	}
}

// ObserveAccepted increments the accepted-corrections counter by n.
func (c *Collector) ObserveAccepted(n int) {
	c.accepted.Add(float64(n))
}

// ServeAdmin starts a blocking HTTP server exposing /metrics on addr,
// for the optional metrics_addr config key. Callers typically run
// this in its own goroutine.
func ServeAdmin(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Str("addr", addr).Msg("serving metrics")
	return http.ListenAndServe(addr, mux)
}
