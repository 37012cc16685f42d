package pipeline

// DropLocation is a position inside a stage as reported by a drag gesture.
type DropLocation struct {
	StageID string
	Index   int
}

// DropResult is what any drag-and-drop source hands over when a gesture ends.
// A nil Destination means the gesture was cancelled or released outside a column.
type DropResult struct {
	Source      DropLocation
	Destination *DropLocation
}

// ApplyDrop turns a finished gesture into a transition. Cancelled gestures and
// positions that do not resolve to a deal leave the board unchanged.
func (b Board) ApplyDrop(r DropResult) (Board, bool) {
	if r.Destination == nil {
		return b, false
	}
	dest := *r.Destination
	if r.Source.StageID == dest.StageID {
		return b.ReorderWithinStage(r.Source.StageID, r.Source.Index, dest.Index)
	}

	src := b.stageIndex(r.Source.StageID)
	dst := b.stageIndex(dest.StageID)
	if src < 0 || dst < 0 {
		return b, false
	}
	if r.Source.Index < 0 || r.Source.Index >= len(b.stages[src].Deals) {
		return b, false
	}
	return b.transfer(src, r.Source.Index, dst, dest.Index), true
}
