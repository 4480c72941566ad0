package events

import "github.com/FuryACE007/team-ui/internal/domain/models"

var QuerySettledTopic = "QuerySettledEvent"

type QuerySettled struct {
	SessionID  string
	Sequence   uint64
	Failed     bool
	Candidates []models.Candidate
}
