package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrDealNotFound        = errors.New("deal not found")
	ErrInvalidDealID       = errors.New("invalid deal id")
	ErrInvalidDealTitle    = errors.New("invalid deal title")
	ErrInvalidDealValue    = errors.New("invalid deal value")
	ErrEmptyStageCatalog   = errors.New("stage catalog has no stages")
	ErrInvalidStageID      = errors.New("invalid stage id")
	ErrDuplicateStageID    = errors.New("duplicate stage id")
	ErrDuplicateDealID     = errors.New("duplicate deal id")
	ErrInvalidStageCatalog = errors.New("invalid stage catalog")
)

// CommandResult is the outcome of a board command. Applied is false when the
// command referenced something that does not exist (or changed nothing); the
// board is then the unchanged authoritative board.
type CommandResult struct {
	Applied bool
	Board   pipeline.Board
}

// DealLocation is a deal together with where it currently sits.
type DealLocation struct {
	Deal    entities.Deal
	StageID string
	Index   int
}

// MetricsSnapshot pairs a board with the metrics computed from it, so both
// come from the same state.
type MetricsSnapshot struct {
	Board   pipeline.Board
	Metrics pipeline.BoardMetrics
}

// IPipelineUseCase exposes the deal pipeline board.
//
// Command surface:
//   - ReorderWithinStage, MoveAcrossStages, ApplyDrop (drag-and-drop)
//   - AddDeal, EditDeal, DeleteDeal (forms and card actions)
//   - Reset (reseed from the stage catalog)
//
// Read surface:
//   - GetBoard, FilterBoard, GetMetrics, GetDeal

type IPipelineUseCase interface {
	GetBoard(ctx context.Context) pipeline.Board
	FilterBoard(ctx context.Context, criteria pipeline.Criteria) pipeline.Board
	GetMetrics(ctx context.Context) MetricsSnapshot
	GetDeal(ctx context.Context, dealID string) (DealLocation, error)
	ReorderWithinStage(ctx context.Context, stageID string, fromIndex, toIndex int) CommandResult
	MoveAcrossStages(ctx context.Context, dealID, sourceStageID, destStageID string, destIndex int) CommandResult
	ApplyDrop(ctx context.Context, drop pipeline.DropResult) CommandResult
	AddDeal(ctx context.Context, stageID string, draft entities.DealDraft) (entities.Deal, CommandResult, error)
	EditDeal(ctx context.Context, dealID string, patch entities.DealPatch) (CommandResult, error)
	DeleteDeal(ctx context.Context, dealID string) CommandResult
	Reset(ctx context.Context) (pipeline.Board, error)
}

// PipelineUseCase owns the single authoritative board. Commands are
// serialized; reads see the board as of the last completed command.
type PipelineUseCase struct {
	repo  interfaces.IStageCatalogRepository
	newID func() string

	mu    sync.RWMutex
	board pipeline.Board
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

// NewPipelineUseCase loads the stage catalog and seeds the board.
func NewPipelineUseCase(ctx context.Context, repo interfaces.IStageCatalogRepository) (*PipelineUseCase, error) {
	u := &PipelineUseCase{repo: repo, newID: uuid.NewString}
	if _, err := u.Reset(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *PipelineUseCase) GetBoard(_ context.Context) pipeline.Board {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.board
}

func (u *PipelineUseCase) FilterBoard(ctx context.Context, criteria pipeline.Criteria) pipeline.Board {
	board := u.GetBoard(ctx)
	if criteria.IsZero() {
		return board
	}
	return pipeline.Filter(board, criteria)
}

func (u *PipelineUseCase) GetMetrics(ctx context.Context) MetricsSnapshot {
	board := u.GetBoard(ctx)
	return MetricsSnapshot{Board: board, Metrics: pipeline.Summarize(board)}
}

func (u *PipelineUseCase) GetDeal(ctx context.Context, dealID string) (DealLocation, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return DealLocation{}, ErrInvalidDealID
	}
	d, stageID, idx, ok := u.GetBoard(ctx).FindDeal(dealID)
	if !ok {
		return DealLocation{}, ErrDealNotFound
	}
	return DealLocation{Deal: d, StageID: stageID, Index: idx}, nil
}

func (u *PipelineUseCase) ReorderWithinStage(ctx context.Context, stageID string, fromIndex, toIndex int) CommandResult {
	return u.apply(ctx, "reorder", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.ReorderWithinStage(stageID, fromIndex, toIndex)
	}, log.Fields{"stage_id": stageID, "from_index": fromIndex, "to_index": toIndex})
}

func (u *PipelineUseCase) MoveAcrossStages(ctx context.Context, dealID, sourceStageID, destStageID string, destIndex int) CommandResult {
	return u.apply(ctx, "move", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.MoveAcrossStages(dealID, sourceStageID, destStageID, destIndex)
	}, log.Fields{"deal_id": dealID, "source_stage_id": sourceStageID, "dest_stage_id": destStageID, "dest_index": destIndex})
}

func (u *PipelineUseCase) ApplyDrop(ctx context.Context, drop pipeline.DropResult) CommandResult {
	fields := log.Fields{"source_stage_id": drop.Source.StageID, "source_index": drop.Source.Index}
	if drop.Destination != nil {
		fields["dest_stage_id"] = drop.Destination.StageID
		fields["dest_index"] = drop.Destination.Index
	} else {
		fields["dest_stage_id"] = nil
	}
	return u.apply(ctx, "drop", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.ApplyDrop(drop)
	}, fields)
}

func (u *PipelineUseCase) AddDeal(ctx context.Context, stageID string, draft entities.DealDraft) (entities.Deal, CommandResult, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return entities.Deal{}, CommandResult{Board: u.GetBoard(ctx)}, ErrInvalidDealTitle
	}
	if !validDealValue(draft.Value) {
		return entities.Deal{}, CommandResult{Board: u.GetBoard(ctx)}, ErrInvalidDealValue
	}

	deal := entities.Deal{
		ID:          u.newID(),
		Title:       title,
		Company:     strings.TrimSpace(draft.Company),
		Contact:     strings.TrimSpace(draft.Contact),
		Description: strings.TrimSpace(draft.Description),
		Value:       draft.Value,
		DueDate:     draft.DueDate,
	}
	stageID = strings.TrimSpace(stageID)
	res := u.apply(ctx, "add", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.AddDeal(stageID, deal)
	}, log.Fields{"deal_id": deal.ID, "stage_id": stageID})
	if !res.Applied {
		return entities.Deal{}, res, nil
	}

	created, _, _, _ := res.Board.FindDeal(deal.ID)
	return created, res, nil
}

func (u *PipelineUseCase) EditDeal(ctx context.Context, dealID string, patch entities.DealPatch) (CommandResult, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return CommandResult{Board: u.GetBoard(ctx)}, ErrInvalidDealID
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return CommandResult{Board: u.GetBoard(ctx)}, ErrInvalidDealTitle
		}
		patch.Title = &title
	}
	if patch.Value != nil && !validDealValue(*patch.Value) {
		return CommandResult{Board: u.GetBoard(ctx)}, ErrInvalidDealValue
	}

	return u.apply(ctx, "edit", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.EditDeal(dealID, patch)
	}, log.Fields{"deal_id": dealID}), nil
}

func (u *PipelineUseCase) DeleteDeal(ctx context.Context, dealID string) CommandResult {
	dealID = strings.TrimSpace(dealID)
	return u.apply(ctx, "delete", func(b pipeline.Board) (pipeline.Board, bool) {
		return b.DeleteDeal(dealID)
	}, log.Fields{"deal_id": dealID})
}

// Reset discards the session board and reseeds it from the stage catalog.
func (u *PipelineUseCase) Reset(ctx context.Context) (pipeline.Board, error) {
	log.WithContext(ctx).Info("[pipeline][usecase] reset start")
	catalog, err := u.repo.Load(ctx)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("[pipeline][usecase] reset failed loading stage catalog")
		return pipeline.Board{}, err
	}
	board, err := BuildBoard(catalog)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("[pipeline][usecase] reset failed building board")
		return pipeline.Board{}, err
	}

	u.mu.Lock()
	u.board = board
	u.mu.Unlock()

	log.WithContext(ctx).WithFields(log.Fields{"stages": len(catalog.Stages), "deals": board.DealCount()}).Info("[pipeline][usecase] reset success")
	return board, nil
}

func (u *PipelineUseCase) apply(
	ctx context.Context,
	action string,
	transition func(pipeline.Board) (pipeline.Board, bool),
	fields log.Fields,
) CommandResult {
	u.mu.Lock()
	next, applied := transition(u.board)
	if applied {
		u.board = next
	}
	board := u.board
	u.mu.Unlock()

	entry := log.WithContext(ctx).WithFields(fields).WithField("applied", applied)
	if applied {
		entry.Infof("[pipeline][usecase] %s applied", action)
	} else {
		entry.Debugf("[pipeline][usecase] %s ignored", action)
	}
	return CommandResult{Applied: applied, Board: board}
}

// BuildBoard turns a catalog into a board. Stage ids must be unique, outcomes
// known, and every seed deal must belong to exactly one known stage with a
// valid value, a probability within 0..100 and a known status.
func BuildBoard(catalog interfaces.Catalog) (pipeline.Board, error) {
	if len(catalog.Stages) == 0 {
		return pipeline.Board{}, ErrEmptyStageCatalog
	}
	rules := pipeline.RulesFromDefinitions(catalog.Stages)

	seenStages := make(map[string]struct{}, len(catalog.Stages))
	seenDeals := make(map[string]struct{})
	stages := make([]entities.Stage, 0, len(catalog.Stages))
	for _, def := range catalog.Stages {
		if strings.TrimSpace(def.ID) == "" {
			return pipeline.Board{}, ErrInvalidStageID
		}
		if _, dup := seenStages[def.ID]; dup {
			return pipeline.Board{}, fmt.Errorf("%w: %s", ErrDuplicateStageID, def.ID)
		}
		seenStages[def.ID] = struct{}{}
		if !def.Outcome.IsValid() {
			return pipeline.Board{}, fmt.Errorf("%w: stage %s has unknown outcome %q", ErrInvalidStageCatalog, def.ID, def.Outcome)
		}

		stage := entities.NewStage(def)
		for _, d := range catalog.Deals[def.ID] {
			if _, dup := seenDeals[d.ID]; dup || d.ID == "" {
				return pipeline.Board{}, fmt.Errorf("%w: %q", ErrDuplicateDealID, d.ID)
			}
			seenDeals[d.ID] = struct{}{}
			if err := validateSeedDeal(d); err != nil {
				return pipeline.Board{}, err
			}
			if d.Status == "" {
				d.Status = rules.StatusFor(def.ID)
			}
			stage.Deals = append(stage.Deals, d)
		}
		stages = append(stages, stage)
	}

	for stageID, deals := range catalog.Deals {
		if _, ok := seenStages[stageID]; !ok && len(deals) > 0 {
			log.WithFields(log.Fields{"stage_id": stageID, "deals": len(deals)}).Warn("[pipeline][usecase] seed deals reference unknown stage; skipped")
		}
	}
	return pipeline.NewBoard(stages, rules), nil
}

func validateSeedDeal(d entities.Deal) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: deal %s has no title", ErrInvalidStageCatalog, d.ID)
	case !validDealValue(d.Value):
		return fmt.Errorf("%w: deal %s has invalid value %v", ErrInvalidStageCatalog, d.ID, d.Value)
	case d.Probability < 0 || d.Probability > 100:
		return fmt.Errorf("%w: deal %s has probability %d outside 0..100", ErrInvalidStageCatalog, d.ID, d.Probability)
	case d.Status != "" && !d.Status.IsValid():
		return fmt.Errorf("%w: deal %s has unknown status %q", ErrInvalidStageCatalog, d.ID, d.Status)
	}
	return nil
}

func validDealValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
