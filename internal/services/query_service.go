package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FuryACE007/team-ui/internal/domain/events"
	"github.com/FuryACE007/team-ui/internal/domain/models"
	"github.com/FuryACE007/team-ui/internal/logger"
	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/FuryACE007/team-ui/internal/page"
	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type intentExtractor interface {
	Extract(sentence string) models.QueryParameters
}

type candidatesClient interface {
	GetCandidates(ctx context.Context, query models.QueryParameters) ([]models.Candidate, error)
}

// QueryService runs the submit pipeline of the query page: the extractor synchronously,
// the candidate fetch in its own goroutine, then the settlement on the session state.
type QueryService struct {
	ctx       context.Context
	bus       EventBus.Bus
	extractor intentExtractor
	client    candidatesClient
	sessions  *Sessions
}

func NewQueryService(ctx context.Context, bus EventBus.Bus, extractor intentExtractor,
	client candidatesClient, sessions *Sessions) (*QueryService, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if extractor == nil {
		return nil, errors.New("extractor is nil")
	}
	if client == nil {
		return nil, errors.New("candidates client is nil")
	}
	if sessions == nil {
		return nil, errors.New("sessions are nil")
	}

	return &QueryService{ctx: ctx, bus: bus, extractor: extractor, client: client, sessions: sessions}, nil
}

// Submit starts a query for the session and returns its sequence number. The session is
// in loading state when Submit returns.
func (s *QueryService) Submit(sessionID string, source string, input string) uint64 {

	params := s.extractor.Extract(input)

	sess := s.sessions.getOrCreate(sessionID)
	sess.mu.Lock()
	seq := sess.state.Begin(input)
	sess.mu.Unlock()

	metrics.QueriesCounter.WithLabelValues(source).Inc()
	log.Debugf("session %s: query #%d started, skills: %v, budget: %q, part time: %s, full time: %s",
		sessionID, seq, params.Skills, params.Budget, params.PartTime, params.FullTime)

	go s.fetch(sessionID, sess, seq, params)
	return seq
}

// State returns a snapshot of the session's page state. Unknown sessions are idle and empty.
func (s *QueryService) State(sessionID string) page.State {
	sess, found := s.sessions.get(sessionID)
	if !found {
		return page.State{}
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.Snapshot()
}

func (s *QueryService) fetch(sessionID string, sess *session, seq uint64, params models.QueryParameters) {

	var (
		candidates []models.Candidate
		err        error
	)

	defer func() {
		if r := recover(); r != nil {
			candidates, err = nil, fmt.Errorf("candidates fetch panicked: %v", r)
		}
		s.settle(sessionID, sess, seq, candidates, err)
	}()

	start := time.Now()
	candidates, err = s.client.GetCandidates(s.ctx, params)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
}

func (s *QueryService) settle(sessionID string, sess *session, seq uint64, candidates []models.Candidate, err error) {

	sess.mu.Lock()
	applied := sess.state.Settle(seq, candidates, err)
	snapshot := sess.state.Snapshot()
	sess.mu.Unlock()

	if !applied {
		metrics.FetchResultsCounter.WithLabelValues(metrics.ResultStale).Inc()
		log.Debugf("session %s: query #%d superseded by #%d, result discarded", sessionID, seq, snapshot.Sequence())
		return
	}

	if err != nil {
		metrics.FetchResultsCounter.WithLabelValues(metrics.ResultFailure).Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCandidatesApi).
			Errorf("session %s: query #%d failed: %v", sessionID, seq, err)
	} else {
		metrics.FetchResultsCounter.WithLabelValues(metrics.ResultSuccess).Inc()
		metrics.CandidatesReceived.Observe(float64(len(candidates)))
		log.Infof("session %s: query #%d returned %d candidates", sessionID, seq, len(candidates))
	}

	s.bus.Publish(events.QuerySettledTopic, events.QuerySettled{
		SessionID:  sessionID,
		Sequence:   seq,
		Failed:     err != nil,
		Candidates: snapshot.Candidates,
	})
}
