package logger

import (
	"testing"

	"github.com/FuryACE007/team-ui/internal/config"
	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_LevelOf_ShouldMapConfiguredLevels(t *testing.T) {

	assert.Equal(t, log.DebugLevel, levelOf(config.LevelDebug))
	assert.Equal(t, log.WarnLevel, levelOf(config.LevelWarning))
	assert.Equal(t, log.ErrorLevel, levelOf(config.LevelError))
	assert.Equal(t, log.InfoLevel, levelOf(""))
}

func Test_PrometheusHook_ShouldCountByErrorType(t *testing.T) {

	hook := &prometheusHook{errors: metrics.ErrorsCounter}
	counter := metrics.ErrorsCounter.WithLabelValues(ErrorTypeCandidatesApi)
	before := testutil.ToFloat64(counter)

	entry := log.WithField(ErrorTypeField, ErrorTypeCandidatesApi)
	assert.NoError(t, hook.Fire(entry))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func Test_LokiHook_Levels_ShouldIncludeOnlySevereEnough(t *testing.T) {

	hook := &lokiHook{minLevel: log.WarnLevel}

	assert.Equal(t, []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel}, hook.Levels())
}
