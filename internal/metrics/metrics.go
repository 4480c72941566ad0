package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultStale   = "stale"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_ui_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	QueriesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_ui_queries_total",
			Help: "Total number of submitted queries by front-end.",
		},
		[]string{"source"},
	)
	FetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "team_ui_candidates_fetch_duration_seconds",
			Help:    "Duration of candidate listing requests in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
	FetchResultsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_ui_candidates_fetch_results_total",
			Help: "Settled candidate listing requests by result.",
		},
		[]string{"result"},
	)
	CandidatesReceived = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name:       "team_ui_candidates_received",
			Help:       "Number of candidates returned by successful requests.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "team_ui_active_sessions",
			Help: "Number of page sessions held in memory.",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(QueriesCounter)
		prometheus.MustRegister(FetchDuration)
		prometheus.MustRegister(FetchResultsCounter)
		prometheus.MustRegister(CandidatesReceived)
		prometheus.MustRegister(ActiveSessions)
	})
}

// NewLogsDroppedCounter exposes the number of log lines the loki pusher had to discard.
func NewLogsDroppedCounter(dropped func() int64) prometheus.CounterFunc {
	return prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "team_ui_loki_dropped_entries_total",
			Help: "Total number of log lines dropped because the loki buffer was full.",
		},
		func() float64 { return float64(dropped()) },
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
