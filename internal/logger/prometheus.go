package logger

import (
	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const unknownErrorType = "unknown"

// prometheusHook counts error-level entries by their error type field.
type prometheusHook struct {
	errors *prometheus.CounterVec
}

func (h *prometheusHook) Fire(entry *log.Entry) error {
	errorType, _ := entry.Data[ErrorTypeField].(string)
	if errorType == "" {
		errorType = unknownErrorType
	}
	h.errors.WithLabelValues(errorType).Inc()
	return nil
}

func (h *prometheusHook) Levels() []log.Level {
	return log.AllLevels[:log.ErrorLevel+1]
}

func addPrometheusHook() {
	log.AddHook(&prometheusHook{errors: metrics.ErrorsCounter})
	log.Debug("Prometheus error counting enabled")
}
