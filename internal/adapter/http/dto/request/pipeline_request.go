package request

// BoardQuery carries the board filter controls.
type BoardQuery struct {
	Search   string   `form:"search"`
	MinValue *float64 `form:"min_value" validate:"omitempty,gte=0"`
}

type ReorderRequest struct {
	StageID   string `json:"stage_id" validate:"required"`
	FromIndex *int   `json:"from_index" validate:"required"`
	ToIndex   *int   `json:"to_index" validate:"required"`
}

type MoveRequest struct {
	DealID        string `json:"deal_id" validate:"required"`
	SourceStageID string `json:"source_stage_id" validate:"required"`
	DestStageID   string `json:"dest_stage_id" validate:"required"`
	DestIndex     *int   `json:"dest_index" validate:"required"`
}

type DropLocationRequest struct {
	StageID string `json:"stage_id" validate:"required"`
	Index   *int   `json:"index" validate:"required"`
}

// DropRequest mirrors the drag-and-drop library result. A null destination
// means the card was released outside every column.
type DropRequest struct {
	Source      *DropLocationRequest `json:"source" validate:"required"`
	Destination *DropLocationRequest `json:"destination" validate:"omitempty"`
}
