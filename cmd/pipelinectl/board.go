package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"crm_pipeline/internal/adapter/http/validation"
	"crm_pipeline/internal/domain/pipeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	searchTerm string
	minValue   float64
)

var stageTitleStyle = lipgloss.NewStyle().Bold(true)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print every stage with its deals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newPipelineUseCase(cmd.Context())
		if err != nil {
			return err
		}
		board := uc.FilterBoard(cmd.Context(), pipeline.Criteria{SearchTerm: searchTerm, MinValue: minValue})
		printBoard(cmd.OutOrStdout(), board)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print per-stage and board-wide metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newPipelineUseCase(cmd.Context())
		if err != nil {
			return err
		}
		printMetrics(cmd.OutOrStdout(), uc.GetMetrics(cmd.Context()).Metrics)
		return nil
	},
}

func init() {
	boardCmd.Flags().StringVar(&searchTerm, "search", "", "case-insensitive title filter")
	boardCmd.Flags().Float64Var(&minValue, "min-value", 0, "only deals worth at least this much")
}

func printBoard(w io.Writer, b pipeline.Board) {
	for _, s := range b.Stages() {
		fmt.Fprintf(w, "%s (%s) %d deals\n", stageTitleStyle.Render(s.Title), s.ID, len(s.Deals))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, d := range s.Deals {
			due := ""
			if !d.DueDate.IsZero() {
				due = d.DueDate.Format(validation.DateLayout)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%.2f\t%d%%\t%s\t%s\n", d.ID, d.Title, d.Company, d.Value, d.Probability, due, d.Status)
		}
		tw.Flush()
	}
}

func printMetrics(w io.Writer, m pipeline.BoardMetrics) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tDEALS\tTOTAL\tWEIGHTED\tPROGRESS")
	for _, s := range m.Stages {
		progress := "-"
		if s.Progress != nil {
			progress = fmt.Sprintf("%.0f%%", *s.Progress*100)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%s\n", s.StageID, s.DealCount, s.TotalValue, s.WeightedValue, progress)
	}
	tw.Flush()

	fmt.Fprintf(w, "total deals: %d\n", m.TotalDeals)
	fmt.Fprintf(w, "total value: %.2f\n", m.TotalValue)
	fmt.Fprintf(w, "weighted value: %.2f\n", m.WeightedValue)
	fmt.Fprintf(w, "average probability: %.1f%%\n", m.AverageProbability)
	fmt.Fprintf(w, "win rate: %.1f%% (%d won, %d lost)\n", m.WinRate*100, m.WonCount, m.LostCount)
}
