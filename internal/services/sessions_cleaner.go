package services

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type expiringSessions interface {
	DeleteExpired() int
}

type SessionsCleaner struct {
	sessions expiringSessions
	cron     *cron.Cron
}

func NewSessionsCleaner(sessions expiringSessions, schedule string) (*SessionsCleaner, error) {

	if sessions == nil {
		return nil, errors.New("sessions are nil")
	}

	sc := &SessionsCleaner{
		sessions: sessions,
		cron:     cron.New(),
	}

	if _, err := sc.cron.AddFunc(schedule, sc.cleanExpiredSessions); err != nil {
		return nil, errors.Wrapf(err, "invalid sessions cleanup schedule %q", schedule)
	}

	sc.cron.Start()
	log.Infof("sessions cleaner started, schedule: %s", schedule)
	return sc, nil
}

func (sc *SessionsCleaner) Stop() {
	<-sc.cron.Stop().Done()
}

func (sc *SessionsCleaner) cleanExpiredSessions() {
	removed := sc.sessions.DeleteExpired()
	if removed > 0 {
		log.Infof("expired sessions were cleaned, removed: %d", removed)
	}
}
