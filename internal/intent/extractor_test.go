package intent

import (
	"testing"

	"github.com/FuryACE007/team-ui/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func applyMatcher(name string, sentence string) models.QueryParameters {
	params := models.NewQueryParameters()
	for _, m := range defaultMatchers {
		if m.name != name {
			continue
		}
		if groups := m.pattern.FindStringSubmatch(sentence); groups != nil {
			m.extract(groups, &params)
		}
	}
	return params
}

func Test_Extract_WhenFullRequest_ShouldExtractAllParameters(t *testing.T) {

	assert := assert.New(t)

	params := NewExtractor().Extract("Looking for someone with React, Node, SQL knowledge, budget is 5000, part-time")

	assert.Equal([]string{"React", "Node", "SQL"}, params.Skills)
	assert.Equal("5000", params.Budget)
	assert.Equal("true", params.PartTime)
	assert.Equal("false", params.FullTime)
}

func Test_Extract_WhenOnlyFullTime_ShouldKeepOtherDefaults(t *testing.T) {

	assert := assert.New(t)

	params := NewExtractor().Extract("Need a full-time engineer")

	assert.Equal([]string{}, params.Skills)
	assert.Equal("", params.Budget)
	assert.Equal("false", params.PartTime)
	assert.Equal("true", params.FullTime)
}

func Test_Extract_WhenNothingMatches_ShouldReturnDefaults(t *testing.T) {

	params := NewExtractor().Extract("hello there")

	assert.Equal(t, models.NewQueryParameters(), params)
}

func Test_Extract_WhenEmptyInput_ShouldReturnDefaults(t *testing.T) {

	params := NewExtractor().Extract("")

	assert.Equal(t, models.NewQueryParameters(), params)
}

func Test_Extract_WhenBothSchedules_ShouldSetBothFlags(t *testing.T) {

	params := NewExtractor().Extract("part time or FULL TIME is fine")

	assert.Equal(t, "true", params.PartTime)
	assert.Equal(t, "true", params.FullTime)
}

func Test_SkillsMatcher_WhenSpacesAroundCommas_ShouldStripThem(t *testing.T) {

	params := applyMatcher("skills", "someone WITH  React ,  Node,SQL   knowledge")

	assert.Equal(t, []string{"React", "Node", "SQL"}, params.Skills)
}

func Test_SkillsMatcher_WhenUnicodeSpaces_ShouldStripThem(t *testing.T) {

	params := applyMatcher("skills", "with React,\u00a0Node\u2003,\uFEFFSQL\v knowledge")

	assert.Equal(t, []string{"React", "Node", "SQL"}, params.Skills)
}

func Test_PartTimeMatcher_WhenNonBreakingSpace_ShouldMatch(t *testing.T) {

	params := applyMatcher("part_time", "part\u00a0time only")

	assert.Equal(t, "true", params.PartTime)
}

func Test_SkillsMatcher_WhenEmptyTokens_ShouldKeepThem(t *testing.T) {

	params := applyMatcher("skills", "with React,, Node, knowledge")

	assert.Equal(t, []string{"React", "", "Node", ""}, params.Skills)
}

func Test_SkillsMatcher_WhenNoKnowledgePhrase_ShouldNotExtract(t *testing.T) {

	params := applyMatcher("skills", "with React, Node and SQL experience")

	assert.Equal(t, []string{}, params.Skills)
}

func Test_SkillsMatcher_WhenDuplicates_ShouldNotDeduplicate(t *testing.T) {

	params := applyMatcher("skills", "with Go, Go knowledge")

	assert.Equal(t, []string{"Go", "Go"}, params.Skills)
}

func Test_BudgetMatcher_WhenLeadingZeros_ShouldPassThrough(t *testing.T) {

	params := applyMatcher("budget", "Budget Is 007500 per month")

	assert.Equal(t, "007500", params.Budget)
}

func Test_BudgetMatcher_WhenNotNumeric_ShouldNotExtract(t *testing.T) {

	params := applyMatcher("budget", "budget is flexible")

	assert.Equal(t, "", params.Budget)
}

func Test_PartTimeMatcher_ShouldAcceptSpellingVariants(t *testing.T) {

	for _, sentence := range []string{"part-time", "part time", "Part Time", "parttime", "PART - time"} {
		params := applyMatcher("part_time", sentence)
		assert.Equal(t, "true", params.PartTime, sentence)
		assert.Equal(t, "false", params.FullTime, sentence)
	}
}

func Test_FullTimeMatcher_ShouldAcceptSpellingVariants(t *testing.T) {

	for _, sentence := range []string{"full-time", "full time", "Full-Time", "fulltime"} {
		params := applyMatcher("full_time", sentence)
		assert.Equal(t, "true", params.FullTime, sentence)
		assert.Equal(t, "false", params.PartTime, sentence)
	}
}
