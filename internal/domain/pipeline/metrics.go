package pipeline

import "crm_pipeline/internal/domain/entities"

// StageMetrics are the per-column figures shown above each stage.
type StageMetrics struct {
	StageID       string
	DealCount     int
	TotalValue    float64
	WeightedValue float64
	// Progress is min(TotalValue/Target, 1); nil when the stage has no target.
	Progress *float64
}

// BoardMetrics aggregate every stage. They are always recomputed from the
// board's deal sequences; nothing here is cached between transitions.
type BoardMetrics struct {
	TotalDeals         int
	TotalValue         float64
	WeightedValue      float64
	AverageProbability float64
	WonCount           int
	LostCount          int
	WinRate            float64
	Stages             []StageMetrics
}

func TotalValue(deals []entities.Deal) float64 {
	total := 0.0
	for _, d := range deals {
		total += d.Value
	}
	return total
}

// WeightedValue is the expected revenue: sum of value * probability / 100.
func WeightedValue(deals []entities.Deal) float64 {
	total := 0.0
	for _, d := range deals {
		total += d.Value * float64(d.Probability) / 100
	}
	return total
}

// StageProgress compares a stage's total value with its target, capped at 1.
func StageProgress(s entities.Stage) (float64, bool) {
	if s.Target == nil || *s.Target <= 0 {
		return 0, false
	}
	return min(TotalValue(s.Deals) / *s.Target, 1.0), true
}

// WinRate is won / (won + lost), and 0 when no deal is closed yet.
func WinRate(won, lost int) float64 {
	closed := won + lost
	if closed == 0 {
		return 0
	}
	return float64(won) / float64(closed)
}

func SummarizeStage(s entities.Stage) StageMetrics {
	m := StageMetrics{
		StageID:       s.ID,
		DealCount:     len(s.Deals),
		TotalValue:    TotalValue(s.Deals),
		WeightedValue: WeightedValue(s.Deals),
	}
	if p, ok := StageProgress(s); ok {
		m.Progress = &p
	}
	return m
}

func Summarize(b Board) BoardMetrics {
	m := BoardMetrics{Stages: make([]StageMetrics, 0, len(b.stages))}
	probabilitySum := 0
	for _, s := range b.stages {
		sm := SummarizeStage(s)
		m.Stages = append(m.Stages, sm)
		m.TotalDeals += sm.DealCount
		m.TotalValue += sm.TotalValue
		m.WeightedValue += sm.WeightedValue

		for _, d := range s.Deals {
			probabilitySum += d.Probability
			switch d.Status {
			case entities.DealStatusWon:
				m.WonCount++
			case entities.DealStatusLost:
				m.LostCount++
			}
		}
	}
	if m.TotalDeals > 0 {
		m.AverageProbability = float64(probabilitySum) / float64(m.TotalDeals)
	}
	m.WinRate = WinRate(m.WonCount, m.LostCount)
	return m
}
