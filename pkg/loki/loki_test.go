package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockLogger struct{}

func (m *MockLogger) Error(msg string, args ...any) {
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &MockLogger{})
	assert.Error(t, err)

	cfg.Url = "http://localhost:3100/loki/api/v1/push"
	pusher, err := New(context.Background(), cfg, &MockLogger{})
	require.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, cfg.Url, pusher.config.Url)
	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, 1024, pusher.config.BufferSize)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}

func Test_Pusher_Stop_ShouldFlushQueuedLines(t *testing.T) {

	received := make(chan pushRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz, err := gzip.NewReader(r.Body)
		if err == nil {
			var req pushRequest
			if json.NewDecoder(gz).Decode(&req) == nil {
				received <- req
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pusher, err := New(context.Background(), Config{
		Url:          server.URL,
		BatchMaxWait: time.Hour,
		Labels:       map[string]string{"app": "team-ui"},
	}, &MockLogger{})
	require.NoError(t, err)

	pusher.Push(LogEntry{Level: "error", Message: "candidates request failed", ErrorType: "candidates_api"})
	pusher.Stop()

	select {
	case req := <-received:
		require.Len(t, req.Streams, 1)
		assert.Equal(t, "team-ui", req.Streams[0].Stream["app"])
		require.Len(t, req.Streams[0].Values, 1)
		assert.Contains(t, req.Streams[0].Values[0][1], "candidates request failed")
	case <-time.After(5 * time.Second):
		assert.Fail(t, "timed out")
	}
}

func Test_Pusher_Push_WhenBufferFull_ShouldCountDropped(t *testing.T) {

	pusher := &Pusher{entries: make(chan streamValue, 1)}

	pusher.Push(LogEntry{Level: "error", Message: "first"})
	pusher.Push(LogEntry{Level: "error", Message: "second"})
	pusher.Push(LogEntry{Level: "error", Message: "third"})

	assert.Equal(t, int64(2), pusher.Dropped())
}
