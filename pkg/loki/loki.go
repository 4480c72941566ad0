// Package loki batches log lines and pushes them to a Loki HTTP endpoint.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
)

type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {

	// TenantKey and TenantValue form an optional tenant header for multi-tenant Loki.
	TenantKey   string
	TenantValue string

	// Url of the push endpoint, e.g. https://example-prod.grafana.net/loki/api/v1/push
	Url string `validate:"required,url"`

	// BatchMaxSize is the maximum number of log lines sent in one request.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the maximum time a line waits before the batch is flushed.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// BufferSize is the number of lines that may queue up before Push starts dropping.
	BufferSize int `validate:"gte=1"`

	// Labels are attached to the stream of every pushed line.
	Labels map[string]string

	// Username and Password enable basic auth when both are set.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 1024
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level     string `json:"level"`
	Message   string `json:"msg"`
	Caller    string `json:"caller,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}

type Pusher struct {
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	client    *http.Client
	entries   chan streamValue
	waitGroup sync.WaitGroup
	batch     []streamValue
	logger    Logger
	mu        sync.RWMutex
	closed    bool
	dropped   atomic.Int64
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values []streamValue     `json:"values"`
}

type streamValue []string

func New(ctx context.Context, cfg Config, logger Logger) (*Pusher, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pusher{
		config:  cfg,
		ctx:     ctx,
		cancel:  cancel,
		client:  &http.Client{Timeout: 10 * time.Second},
		entries: make(chan streamValue, cfg.BufferSize),
		batch:   make([]streamValue, 0, cfg.BatchMaxSize),
		logger:  logger,
	}

	p.waitGroup.Add(1)
	go p.run()
	return p, nil
}

// Push queues a line. It never blocks the caller: when the buffer is full the line is dropped.
func (p *Pusher) Push(e LogEntry) {
	value, err := newStreamValue(e, time.Now())
	if err != nil {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.entries <- value:
	default:
		p.dropped.Add(1)
	}
}

// Dropped reports how many lines were discarded because the buffer was full.
func (p *Pusher) Dropped() int64 {
	return p.dropped.Load()
}

// Stop flushes what is queued and stops the background sender.
func (p *Pusher) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.entries)
	p.mu.Unlock()

	p.waitGroup.Wait()
	p.cancel()
}

func (p *Pusher) run() {
	defer p.waitGroup.Done()

	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()

	flush := func() {
		if len(p.batch) == 0 {
			return
		}
		if err := p.send(); err != nil {
			p.logger.Error("failed to send logs", "error", err, "lines", len(p.batch))
		}
		p.batch = p.batch[:0]
	}

	for {
		select {
		case <-p.ctx.Done():
			return
		case value, ok := <-p.entries:
			if !ok {
				flush()
				return
			}
			p.batch = append(p.batch, value)
			if len(p.batch) >= p.config.BatchMaxSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func newStreamValue(entry LogEntry, at time.Time) (streamValue, error) {
	entryJson, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return streamValue{strconv.FormatInt(at.UnixNano(), 10), string(entryJson)}, nil
}

func (p *Pusher) send() error {
	buf := new(bytes.Buffer)
	gz := gzip.NewWriter(buf)

	if err := json.NewEncoder(gz).Encode(pushRequest{Streams: []stream{{
		Stream: p.config.Labels,
		Values: p.batch,
	}}}); err != nil {
		return err
	}

	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(p.ctx, http.MethodPost, p.config.Url, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	if p.config.TenantKey != "" {
		req.Header.Set(p.config.TenantKey, p.config.TenantValue)
	}

	if p.config.Username != "" && p.config.Password != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received unexpected response code from Loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
