package service

import (
	"time"

	"github.com/limbo/drinklog/internal/analysis"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	analysisRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drinklog_analysis_requests_total",
			Help: "Total number of analysis runs",
		},
		[]string{"mode", "outcome"},
	)
	analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drinklog_analysis_duration_seconds",
			Help:    "Duration of analysis runs including store reads",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
)

// RegisterMetrics registers the analysis collectors. Call once from main.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(analysisRequests, analysisDuration)
}

func observeAnalysis(mode analysis.Mode, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	analysisRequests.WithLabelValues(string(mode), outcome).Inc()
	analysisDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
}
