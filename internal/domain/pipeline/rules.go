package pipeline

import (
	"slices"

	"crm_pipeline/internal/domain/entities"
)

// ProbabilityTable maps a stage id to the win probability (percent) a deal
// takes when it is dropped into that stage.
type ProbabilityTable map[string]int

// Lookup reports the configured probability for stageID. A configured 0 is a
// valid probability; only a missing entry reports ok=false.
func (t ProbabilityTable) Lookup(stageID string) (int, bool) {
	p, ok := t[stageID]
	return p, ok
}

// Rules hold the stage-dependent derivations applied on cross-stage moves.
type Rules struct {
	Probabilities ProbabilityTable
	WonStageID    string
	LostStageIDs  []string
}

// RulesFromDefinitions derives the probability table and terminal stages from
// configured stage definitions. The first stage with a won outcome becomes the
// won stage.
func RulesFromDefinitions(defs []entities.StageDefinition) Rules {
	r := Rules{Probabilities: make(ProbabilityTable, len(defs))}
	for _, d := range defs {
		if d.Probability != nil {
			r.Probabilities[d.ID] = clampPercent(*d.Probability)
		}
		switch d.Outcome {
		case entities.StageOutcomeWon:
			if r.WonStageID == "" {
				r.WonStageID = d.ID
			}
		case entities.StageOutcomeLost:
			r.LostStageIDs = append(r.LostStageIDs, d.ID)
		}
	}
	return r
}

// StatusFor returns the status a deal takes when it lands in stageID.
func (r Rules) StatusFor(stageID string) entities.DealStatus {
	switch {
	case r.WonStageID != "" && stageID == r.WonStageID:
		return entities.DealStatusWon
	case slices.Contains(r.LostStageIDs, stageID):
		return entities.DealStatusLost
	default:
		return entities.DealStatusActive
	}
}

// Apply recomputes the stage-derived fields of d for stageID.
// Unknown stages keep the current probability.
func (r Rules) Apply(d entities.Deal, stageID string) entities.Deal {
	if p, ok := r.Probabilities.Lookup(stageID); ok {
		d.Probability = p
	}
	d.Status = r.StatusFor(stageID)
	return d
}

func (r Rules) clone() Rules {
	out := Rules{
		WonStageID:   r.WonStageID,
		LostStageIDs: slices.Clone(r.LostStageIDs),
	}
	if r.Probabilities != nil {
		out.Probabilities = make(ProbabilityTable, len(r.Probabilities))
		for k, v := range r.Probabilities {
			out.Probabilities[k] = v
		}
	}
	return out
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}
