package pipeline

import (
	"strings"

	"crm_pipeline/internal/domain/entities"
)

// Criteria are the two board filter inputs: a title search and a minimum value.
type Criteria struct {
	SearchTerm string
	MinValue   float64
}

func (c Criteria) IsZero() bool {
	return c.SearchTerm == "" && c.MinValue <= 0
}

// Matches reports whether d passes both filters. The title match is case-insensitive.
func (c Criteria) Matches(d entities.Deal) bool {
	if !strings.Contains(strings.ToLower(d.Title), strings.ToLower(c.SearchTerm)) {
		return false
	}
	return d.Value >= c.MinValue
}

// Filter projects b onto the deals matching c. Every stage is kept, possibly
// empty, and b itself is left untouched so clearing the filter shows everything again.
func Filter(b Board, c Criteria) Board {
	stages := make([]entities.Stage, len(b.stages))
	for i, s := range b.stages {
		kept := make([]entities.Deal, 0, len(s.Deals))
		for _, d := range s.Deals {
			if c.Matches(d) {
				kept = append(kept, d)
			}
		}
		s.Deals = kept
		stages[i] = s
	}
	return Board{stages: stages, rules: b.rules}
}
