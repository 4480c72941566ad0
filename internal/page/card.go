package page

import (
	"fmt"
	"strings"

	"github.com/FuryACE007/team-ui/internal/domain/models"
	"github.com/samber/lo"
)

type Card struct {
	Key          int
	Name         string
	Availability string
	Skills       []string
	SalaryLines  []string
}

func NewCard(key int, candidate models.Candidate) Card {
	var salaryLines []string
	if candidate.HasPartTimeSalary() {
		salaryLines = append(salaryLines,
			fmt.Sprintf("Part time salary %s %s", candidate.PartTimeSalaryCurrency, candidate.PartTimeSalary))
	}
	if candidate.HasFullTimeSalary() {
		salaryLines = append(salaryLines,
			fmt.Sprintf("Full time salary %s %s", candidate.FullTimeSalaryCurrency, candidate.FullTimeSalary))
	}

	return Card{
		Key:          key,
		Name:         candidate.Name,
		Availability: candidate.Availability,
		Skills:       candidate.Skills,
		SalaryLines:  salaryLines,
	}
}

func NewCards(candidates []models.Candidate) []Card {
	return lo.Map(candidates, func(candidate models.Candidate, index int) Card {
		return NewCard(index, candidate)
	})
}

// Text renders the card for plain-text surfaces such as chat messages.
func (c Card) Text() string {
	var sb strings.Builder
	sb.WriteString(c.Name + "\n")
	sb.WriteString(c.Availability + "\n\n")
	sb.WriteString("Skills\n")
	for _, skill := range c.Skills {
		sb.WriteString("• " + skill + "\n")
	}
	sb.WriteString("\nSalary")
	for _, line := range c.SalaryLines {
		sb.WriteString("\n" + line)
	}
	return sb.String()
}
