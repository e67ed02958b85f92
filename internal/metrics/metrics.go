// internal/metrics/metrics.go
//
// Prometheus instrumentation for hosted games.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/wordle-share/internal/game"
)

// Metrics groups the collectors and the registry they live in.
type Metrics struct {
	reg *prometheus.Registry

	GamesStarted  *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
	Guesses       prometheus.Counter
	GuessesToWin  prometheus.Histogram
	LiveSessions  prometheus.GaugeFunc
}

// New registers all collectors on a fresh registry. live reports the current
// number of sessions when scraped.
func New(namespace string, live func() int) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, by secret source.",
		}, []string{"source"}),
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games finished, by result.",
		}, []string{"result"}),
		Guesses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Scored guesses.",
		}),
		GuessesToWin: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "guesses_to_win",
			Help:      "Rows used by won games.",
			Buckets:   prometheus.LinearBuckets(1, 1, game.MaxGuesses),
		}),
		LiveSessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Sessions currently held in memory.",
		}, func() float64 { return float64(live()) }),
	}
	m.reg.MustRegister(
		m.GamesStarted,
		m.GamesFinished,
		m.Guesses,
		m.GuessesToWin,
		m.LiveSessions,
	)
	return m
}

// Started counts a new game.
func (m *Metrics) Started(source string) {
	m.GamesStarted.WithLabelValues(source).Inc()
}

// Observe records the outcome of one applied event; rows is the history
// length after the event.
func (m *Metrics) Observe(out game.Outcome, rows int) {
	if out.Results == nil {
		return
	}
	m.Guesses.Inc()
	switch out.Signal {
	case game.SignalWin:
		m.GamesFinished.WithLabelValues("won").Inc()
		m.GuessesToWin.Observe(float64(rows))
	case game.SignalLoss:
		m.GamesFinished.WithLabelValues("lost").Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
