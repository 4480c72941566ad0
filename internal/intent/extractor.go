package intent

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/FuryACE007/team-ui/internal/domain/models"
)

type matcher struct {
	name    string
	pattern *regexp.Regexp
	extract func(groups []string, params *models.QueryParameters)
}

// space matches Unicode spaces as well, RE2's \s is ASCII only.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	skillsPattern   = regexp.MustCompile(`(?i)with ([\w` + space + `,]+) knowledge`)
	budgetPattern   = regexp.MustCompile(`(?i)budget is (\d+)`)
	partTimePattern = regexp.MustCompile(`(?i)part[-` + space + `]*time`)
	fullTimePattern = regexp.MustCompile(`(?i)full[-` + space + `]*time`)
)

var defaultMatchers = []matcher{
	{name: "skills", pattern: skillsPattern, extract: extractSkills},
	{name: "budget", pattern: budgetPattern, extract: extractBudget},
	{name: "part_time", pattern: partTimePattern, extract: func(_ []string, p *models.QueryParameters) {
		p.PartTime = models.FlagTrue
	}},
	{name: "full_time", pattern: fullTimePattern, extract: func(_ []string, p *models.QueryParameters) {
		p.FullTime = models.FlagTrue
	}},
}

type Extractor struct {
	matchers []matcher
}

func NewExtractor() *Extractor {
	return &Extractor{matchers: defaultMatchers}
}

// Extract derives query parameters from the sentence. Every matcher sees the whole
// input; a matcher that does not match leaves its field at the default.
func (e *Extractor) Extract(sentence string) models.QueryParameters {
	params := models.NewQueryParameters()
	for _, m := range e.matchers {
		groups := m.pattern.FindStringSubmatch(sentence)
		if groups == nil {
			continue
		}
		m.extract(groups, &params)
	}
	return params
}

func extractSkills(groups []string, params *models.QueryParameters) {
	// "React, Node , SQL" -> [React Node SQL]; empty tokens are kept
	compact := strings.Join(strings.FieldsFunc(groups[1], isSpace), "")
	params.Skills = strings.Split(compact, ",")
}

func extractBudget(groups []string, params *models.QueryParameters) {
	params.Budget = groups[1]
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
