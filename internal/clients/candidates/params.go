package candidates

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/FuryACE007/team-ui/internal/domain/models"
	"github.com/samber/lo"
)

const (
	DefaultBaseURL = "http://localhost:3000/candidates"
	DefaultPage    = 1
	DefaultLimit   = 10
)

type SearchParameters struct {
	models.QueryParameters
	Page  int
	Limit int
}

// ToRawQuery keeps the parameter order of the listing API and leaves the comma
// between skills unescaped.
func (s SearchParameters) ToRawQuery() string {
	skills := lo.Map(s.Skills, func(skill string, _ int) string {
		return url.QueryEscape(skill)
	})

	pairs := []string{
		"partTime=" + url.QueryEscape(s.PartTime),
		"fullTime=" + url.QueryEscape(s.FullTime),
		"budget=" + url.QueryEscape(s.Budget),
		"skills=" + strings.Join(skills, ","),
		"page=" + strconv.Itoa(s.Page),
		"limit=" + strconv.Itoa(s.Limit),
	}
	return strings.Join(pairs, "&")
}
