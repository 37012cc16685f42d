package pipeline

import (
	"slices"

	"crm_pipeline/internal/domain/entities"
)

// Board is the authoritative pipeline state: ordered stages, each holding an
// ordered sequence of deals.
//
// Board is a value. Every transition returns a new Board and reports whether
// anything changed; the receiver is never mutated, so a no-op transition hands
// back a board equal to the one it was called on.
type Board struct {
	stages []entities.Stage
	rules  Rules
}

// NewBoard copies stages so later changes to the caller's slices cannot leak in.
func NewBoard(stages []entities.Stage, rules Rules) Board {
	return Board{stages: cloneStages(stages), rules: rules.clone()}
}

// Stages returns a deep copy of the columns in board order.
func (b Board) Stages() []entities.Stage {
	return cloneStages(b.stages)
}

func (b Board) Rules() Rules {
	return b.rules.clone()
}

// Stage returns a copy of the stage with the given id.
func (b Board) Stage(stageID string) (entities.Stage, bool) {
	i := b.stageIndex(stageID)
	if i < 0 {
		return entities.Stage{}, false
	}
	return cloneStage(b.stages[i]), true
}

// DealCount is the number of deals across all stages.
func (b Board) DealCount() int {
	n := 0
	for _, s := range b.stages {
		n += len(s.Deals)
	}
	return n
}

// FindDeal locates a deal by id and returns it with its stage id and position.
func (b Board) FindDeal(dealID string) (entities.Deal, string, int, bool) {
	for _, s := range b.stages {
		if i := dealIndex(s.Deals, dealID); i >= 0 {
			return s.Deals[i], s.ID, i, true
		}
	}
	return entities.Deal{}, "", -1, false
}

// ReorderWithinStage moves the deal at fromIndex to toIndex inside one stage.
// toIndex is clamped to the stage bounds. Deal fields are not touched.
func (b Board) ReorderWithinStage(stageID string, fromIndex, toIndex int) (Board, bool) {
	si := b.stageIndex(stageID)
	if si < 0 {
		return b, false
	}
	deals := b.stages[si].Deals
	if fromIndex < 0 || fromIndex >= len(deals) {
		return b, false
	}
	toIndex = clampIndex(toIndex, len(deals)-1)
	if fromIndex == toIndex {
		return b, false
	}

	moved := deals[fromIndex]
	next := slices.Delete(slices.Clone(deals), fromIndex, fromIndex+1)
	next = slices.Insert(next, toIndex, moved)
	return b.withDeals(map[int][]entities.Deal{si: next}), true
}

// MoveAcrossStages relocates dealID from sourceStageID into destStageID at
// destIndex, recomputing probability and status for the destination.
// When source and destination are the same stage the call degrades to a reorder.
func (b Board) MoveAcrossStages(dealID, sourceStageID, destStageID string, destIndex int) (Board, bool) {
	src := b.stageIndex(sourceStageID)
	dst := b.stageIndex(destStageID)
	if src < 0 || dst < 0 {
		return b, false
	}
	pos := dealIndex(b.stages[src].Deals, dealID)
	if pos < 0 {
		return b, false
	}
	if src == dst {
		return b.ReorderWithinStage(sourceStageID, pos, destIndex)
	}
	return b.transfer(src, pos, dst, destIndex), true
}

// AddDeal appends d to stageID (the first stage when stageID is empty).
// Probability and status are derived from the target stage. Duplicate ids are rejected.
func (b Board) AddDeal(stageID string, d entities.Deal) (Board, bool) {
	if len(b.stages) == 0 || d.ID == "" {
		return b, false
	}
	if _, _, _, exists := b.FindDeal(d.ID); exists {
		return b, false
	}
	si := 0
	if stageID != "" {
		si = b.stageIndex(stageID)
		if si < 0 {
			return b, false
		}
	}

	d = b.rules.Apply(d, b.stages[si].ID)
	next := append(slices.Clone(b.stages[si].Deals), d)
	return b.withDeals(map[int][]entities.Deal{si: next}), true
}

// EditDeal applies the non-nil fields of patch to dealID where it currently sits.
// Identity, probability, and status are not editable.
func (b Board) EditDeal(dealID string, patch entities.DealPatch) (Board, bool) {
	if patch.IsEmpty() {
		return b, false
	}
	for si, s := range b.stages {
		i := dealIndex(s.Deals, dealID)
		if i < 0 {
			continue
		}
		next := slices.Clone(s.Deals)
		next[i] = applyPatch(next[i], patch)
		return b.withDeals(map[int][]entities.Deal{si: next}), true
	}
	return b, false
}

// DeleteDeal removes dealID from whichever stage holds it.
func (b Board) DeleteDeal(dealID string) (Board, bool) {
	for si, s := range b.stages {
		i := dealIndex(s.Deals, dealID)
		if i < 0 {
			continue
		}
		next := slices.Delete(slices.Clone(s.Deals), i, i+1)
		return b.withDeals(map[int][]entities.Deal{si: next}), true
	}
	return b, false
}

func (b Board) transfer(src, pos, dst, destIndex int) Board {
	moved := b.rules.Apply(b.stages[src].Deals[pos], b.stages[dst].ID)

	srcDeals := slices.Delete(slices.Clone(b.stages[src].Deals), pos, pos+1)
	dstDeals := slices.Clone(b.stages[dst].Deals)
	destIndex = clampIndex(destIndex, len(dstDeals))
	dstDeals = slices.Insert(dstDeals, destIndex, moved)

	return b.withDeals(map[int][]entities.Deal{src: srcDeals, dst: dstDeals})
}

// withDeals returns a board sharing untouched stages and swapping in the
// replacement deal sequences by stage position.
func (b Board) withDeals(replacements map[int][]entities.Deal) Board {
	stages := slices.Clone(b.stages)
	for i, deals := range replacements {
		stages[i].Deals = deals
	}
	return Board{stages: stages, rules: b.rules}
}

func (b Board) stageIndex(stageID string) int {
	return slices.IndexFunc(b.stages, func(s entities.Stage) bool { return s.ID == stageID })
}

func dealIndex(deals []entities.Deal, dealID string) int {
	return slices.IndexFunc(deals, func(d entities.Deal) bool { return d.ID == dealID })
}

func applyPatch(d entities.Deal, p entities.DealPatch) entities.Deal {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Company != nil {
		d.Company = *p.Company
	}
	if p.Contact != nil {
		d.Contact = *p.Contact
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.DueDate != nil {
		d.DueDate = *p.DueDate
	}
	return d
}

func clampIndex(i, upper int) int {
	return min(max(i, 0), upper)
}

func cloneStages(stages []entities.Stage) []entities.Stage {
	out := make([]entities.Stage, len(stages))
	for i, s := range stages {
		out[i] = cloneStage(s)
	}
	return out
}

func cloneStage(s entities.Stage) entities.Stage {
	if s.Target != nil {
		t := *s.Target
		s.Target = &t
	}
	s.Deals = append([]entities.Deal{}, s.Deals...)
	return s
}
