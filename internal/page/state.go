package page

import "github.com/FuryACE007/team-ui/internal/domain/models"

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	default:
		return "idle"
	}
}

// State is the page state of one session. Candidates always holds the result of
// the last applied successful fetch.
type State struct {
	Status     Status
	Input      string
	Candidates []models.Candidate
	sequence   uint64
}

// Begin moves the page into loading and returns the sequence number of the new request.
func (s *State) Begin(input string) uint64 {
	s.sequence++
	s.Input = input
	s.Status = StatusLoading
	return s.sequence
}

// Settle applies the outcome of request seq. Outcomes of superseded requests are
// dropped and Settle reports false. A failed request leaves the candidates untouched.
func (s *State) Settle(seq uint64, candidates []models.Candidate, err error) bool {
	if seq != s.sequence {
		return false
	}
	if err == nil {
		s.Candidates = candidates
	}
	s.Status = StatusIdle
	return true
}

func (s *State) Sequence() uint64 {
	return s.sequence
}

func (s *State) IsLoading() bool {
	return s.Status == StatusLoading
}

// Snapshot returns a copy that is safe to read after the owner releases its lock.
func (s *State) Snapshot() State {
	snapshot := *s
	snapshot.Candidates = append([]models.Candidate(nil), s.Candidates...)
	return snapshot
}
