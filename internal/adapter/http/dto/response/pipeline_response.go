package response

import (
	"crm_pipeline/internal/adapter/http/validation"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase"
)

type DealResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Contact     string  `json:"contact"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	Probability int     `json:"probability"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
}

type StageResponse struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Color  string         `json:"color"`
	Target *float64       `json:"target,omitempty"`
	Deals  []DealResponse `json:"deals"`
}

type BoardResponse struct {
	Stages []StageResponse `json:"stages"`
}

// CommandResponse is returned by every board command. Applied is false when
// the command referenced nothing that exists; Board is then unchanged.
type CommandResponse struct {
	Applied bool          `json:"applied"`
	Board   BoardResponse `json:"board"`
}

type DealCreatedResponse struct {
	Applied bool          `json:"applied"`
	Deal    *DealResponse `json:"deal,omitempty"`
	Board   BoardResponse `json:"board"`
}

type DealLocationResponse struct {
	Deal    DealResponse `json:"deal"`
	StageID string       `json:"stage_id"`
	Index   int          `json:"index"`
}

type StageMetricsResponse struct {
	StageID       string   `json:"stage_id"`
	DealCount     int      `json:"deal_count"`
	TotalValue    float64  `json:"total_value"`
	WeightedValue float64  `json:"weighted_value"`
	Progress      *float64 `json:"progress,omitempty"`
}

type BoardMetricsResponse struct {
	TotalDeals         int                    `json:"total_deals"`
	TotalValue         float64                `json:"total_value"`
	WeightedValue      float64                `json:"weighted_value"`
	AverageProbability float64                `json:"average_probability"`
	WonCount           int                    `json:"won_count"`
	LostCount          int                    `json:"lost_count"`
	WinRate            float64                `json:"win_rate"`
	Stages             []StageMetricsResponse `json:"stages"`
}

type MetricsResponse struct {
	Board   BoardResponse        `json:"board"`
	Metrics BoardMetricsResponse `json:"metrics"`
}

func FromDeal(d entities.Deal) DealResponse {
	res := DealResponse{
		ID:          d.ID,
		Title:       d.Title,
		Company:     d.Company,
		Contact:     d.Contact,
		Description: d.Description,
		Value:       d.Value,
		Probability: d.Probability,
		Status:      string(d.Status),
	}
	if !d.DueDate.IsZero() {
		res.DueDate = d.DueDate.Format(validation.DateLayout)
	}
	return res
}

func FromBoard(b pipeline.Board) BoardResponse {
	stages := b.Stages()
	res := BoardResponse{Stages: make([]StageResponse, 0, len(stages))}
	for _, s := range stages {
		deals := make([]DealResponse, 0, len(s.Deals))
		for _, d := range s.Deals {
			deals = append(deals, FromDeal(d))
		}
		res.Stages = append(res.Stages, StageResponse{
			ID:     s.ID,
			Title:  s.Title,
			Color:  s.Color,
			Target: s.Target,
			Deals:  deals,
		})
	}
	return res
}

func FromCommandResult(r usecase.CommandResult) CommandResponse {
	return CommandResponse{Applied: r.Applied, Board: FromBoard(r.Board)}
}

func FromDealCreated(d entities.Deal, r usecase.CommandResult) DealCreatedResponse {
	res := DealCreatedResponse{Applied: r.Applied, Board: FromBoard(r.Board)}
	if r.Applied {
		deal := FromDeal(d)
		res.Deal = &deal
	}
	return res
}

func FromDealLocation(l usecase.DealLocation) DealLocationResponse {
	return DealLocationResponse{Deal: FromDeal(l.Deal), StageID: l.StageID, Index: l.Index}
}

func FromMetrics(m usecase.MetricsSnapshot) MetricsResponse {
	stages := make([]StageMetricsResponse, 0, len(m.Metrics.Stages))
	for _, s := range m.Metrics.Stages {
		stages = append(stages, StageMetricsResponse{
			StageID:       s.StageID,
			DealCount:     s.DealCount,
			TotalValue:    s.TotalValue,
			WeightedValue: s.WeightedValue,
			Progress:      s.Progress,
		})
	}
	return MetricsResponse{
		Board: FromBoard(m.Board),
		Metrics: BoardMetricsResponse{
			TotalDeals:         m.Metrics.TotalDeals,
			TotalValue:         m.Metrics.TotalValue,
			WeightedValue:      m.Metrics.WeightedValue,
			AverageProbability: m.Metrics.AverageProbability,
			WonCount:           m.Metrics.WonCount,
			LostCount:          m.Metrics.LostCount,
			WinRate:            m.Metrics.WinRate,
			Stages:             stages,
		},
	}
}
