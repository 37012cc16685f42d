package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"crm_pipeline/internal/adapter/http/validation"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownOp = errors.New("unknown replay op")

// replayScript is a YAML list of board commands applied in order.
type replayScript struct {
	Commands []replayCommand `yaml:"commands"`
}

type replayLocation struct {
	StageID string `yaml:"stage_id"`
	Index   int    `yaml:"index"`
}

type replayCommand struct {
	Op string `yaml:"op"`

	StageID       string `yaml:"stage_id"`
	FromIndex     int    `yaml:"from_index"`
	ToIndex       int    `yaml:"to_index"`
	DealID        string `yaml:"deal_id"`
	SourceStageID string `yaml:"source_stage_id"`
	DestStageID   string `yaml:"dest_stage_id"`
	DestIndex     int    `yaml:"dest_index"`

	Source      replayLocation  `yaml:"source"`
	Destination *replayLocation `yaml:"destination"`

	Title       *string  `yaml:"title"`
	Company     *string  `yaml:"company"`
	Contact     *string  `yaml:"contact"`
	Description *string  `yaml:"description"`
	Value       *float64 `yaml:"value"`
	DueDate     *string  `yaml:"due_date"`
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Apply a YAML script of board commands and print the result",
	Long: `Replay applies reorder, move, drop, add, edit and delete commands
to a freshly seeded board, printing whether each one applied, then the
final board metrics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		script, err := parseReplayScript(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		uc, err := newPipelineUseCase(cmd.Context())
		if err != nil {
			return err
		}
		if err := runReplay(cmd.Context(), uc, script, cmd.OutOrStdout()); err != nil {
			return err
		}
		printMetrics(cmd.OutOrStdout(), uc.GetMetrics(cmd.Context()).Metrics)
		return nil
	},
}

func parseReplayScript(r io.Reader) (replayScript, error) {
	var script replayScript
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return replayScript{}, err
	}
	for i, c := range script.Commands {
		switch c.Op {
		case "reorder", "move", "drop", "add", "edit", "delete":
		default:
			return replayScript{}, fmt.Errorf("command %d: %w %q", i+1, errUnknownOp, c.Op)
		}
	}
	return script, nil
}

// runReplay applies every command in order. Commands that reference nothing
// are reported as ignored; invalid deal input stops the replay.
func runReplay(ctx context.Context, uc usecase.IPipelineUseCase, script replayScript, w io.Writer) error {
	for i, c := range script.Commands {
		applied, err := applyReplayCommand(ctx, uc, c)
		if err != nil {
			return fmt.Errorf("command %d (%s): %w", i+1, c.Op, err)
		}
		state := "ignored"
		if applied {
			state = "applied"
		}
		fmt.Fprintf(w, "%3d %-8s %s\n", i+1, c.Op, state)
	}
	return nil
}

func applyReplayCommand(ctx context.Context, uc usecase.IPipelineUseCase, c replayCommand) (bool, error) {
	switch c.Op {
	case "reorder":
		return uc.ReorderWithinStage(ctx, c.StageID, c.FromIndex, c.ToIndex).Applied, nil
	case "move":
		return uc.MoveAcrossStages(ctx, c.DealID, c.SourceStageID, c.DestStageID, c.DestIndex).Applied, nil
	case "drop":
		drop := pipeline.DropResult{Source: pipeline.DropLocation{StageID: c.Source.StageID, Index: c.Source.Index}}
		if c.Destination != nil {
			drop.Destination = &pipeline.DropLocation{StageID: c.Destination.StageID, Index: c.Destination.Index}
		}
		return uc.ApplyDrop(ctx, drop).Applied, nil
	case "add":
		draft, err := c.draft()
		if err != nil {
			return false, err
		}
		_, res, err := uc.AddDeal(ctx, c.StageID, draft)
		return res.Applied, err
	case "edit":
		patch, err := c.patch()
		if err != nil {
			return false, err
		}
		res, err := uc.EditDeal(ctx, c.DealID, patch)
		return res.Applied, err
	case "delete":
		return uc.DeleteDeal(ctx, c.DealID).Applied, nil
	}
	return false, fmt.Errorf("%w %q", errUnknownOp, c.Op)
}

func (c replayCommand) draft() (entities.DealDraft, error) {
	var d entities.DealDraft
	if c.Title != nil {
		d.Title = *c.Title
	}
	if c.Company != nil {
		d.Company = *c.Company
	}
	if c.Contact != nil {
		d.Contact = *c.Contact
	}
	if c.Description != nil {
		d.Description = *c.Description
	}
	if c.Value != nil {
		d.Value = *c.Value
	}
	if c.DueDate != nil {
		due, err := parseDate(*c.DueDate)
		if err != nil {
			return entities.DealDraft{}, err
		}
		d.DueDate = due
	}
	return d, nil
}

func (c replayCommand) patch() (entities.DealPatch, error) {
	p := entities.DealPatch{
		Title:       c.Title,
		Company:     c.Company,
		Contact:     c.Contact,
		Description: c.Description,
		Value:       c.Value,
	}
	if c.DueDate != nil {
		due, err := parseDate(*c.DueDate)
		if err != nil {
			return entities.DealPatch{}, err
		}
		p.DueDate = &due
	}
	return p, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(validation.DateLayout, strings.TrimSpace(s))
}
