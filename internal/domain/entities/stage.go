package entities

// StageOutcome marks a stage as terminal. Empty means the stage is still open.
type StageOutcome string

const (
	StageOutcomeOpen StageOutcome = ""
	StageOutcomeWon  StageOutcome = "won"
	StageOutcomeLost StageOutcome = "lost"
)

func (o StageOutcome) IsValid() bool {
	switch o {
	case StageOutcomeOpen, StageOutcomeWon, StageOutcomeLost:
		return true
	}
	return false
}

// StageDefinition is the configured shape of a pipeline column, without deals.
//
// Probability is optional: a stage without one leaves the probability of deals
// dropped into it unchanged.
type StageDefinition struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Color       string       `json:"color" yaml:"color"`
	Target      *float64     `json:"target,omitempty" yaml:"target,omitempty"`
	Probability *int         `json:"probability,omitempty" yaml:"probability,omitempty"`
	Outcome     StageOutcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
}

// Stage is an ordered bucket of deals. Order of Deals is the drag position.
type Stage struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Color  string   `json:"color"`
	Target *float64 `json:"target,omitempty"`
	Deals  []Deal   `json:"deals"`
}

// NewStage builds an empty column from its definition.
func NewStage(def StageDefinition) Stage {
	return Stage{
		ID:     def.ID,
		Title:  def.Title,
		Color:  def.Color,
		Target: def.Target,
		Deals:  []Deal{},
	}
}
