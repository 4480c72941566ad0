package services

import (
	"sync"
	"time"

	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/FuryACE007/team-ui/internal/page"
	gocache "github.com/patrickmn/go-cache"
)

type session struct {
	mu    sync.Mutex
	state page.State
}

// Sessions keeps page state in memory with a sliding expiration. Expired entries are
// removed by DeleteExpired, which the sessions cleaner runs on a schedule.
type Sessions struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{cache: gocache.New(ttl, 0), ttl: ttl}
}

func (s *Sessions) getOrCreate(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(id); found {
		sess := cached.(*session)
		s.cache.SetDefault(id, sess)
		return sess
	}

	sess := &session{}
	s.cache.SetDefault(id, sess)
	metrics.ActiveSessions.Set(float64(s.cache.ItemCount()))
	return sess
}

func (s *Sessions) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	sess := cached.(*session)
	s.cache.SetDefault(id, sess)
	return sess, true
}

func (s *Sessions) Count() int {
	return s.cache.ItemCount()
}

// DeleteExpired drops expired sessions and reports how many were removed.
func (s *Sessions) DeleteExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.cache.ItemCount()
	s.cache.DeleteExpired()
	after := s.cache.ItemCount()
	metrics.ActiveSessions.Set(float64(after))
	return before - after
}
