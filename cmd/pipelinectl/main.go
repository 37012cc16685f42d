// Package main implements pipelinectl, a terminal client for the deal board.
// It seeds a board from the configured stage catalog and drives it through
// the same use case the HTTP API serves.
package main

import (
	"context"
	"fmt"
	"os"

	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/infrastructure/config"
	"crm_pipeline/internal/infrastructure/logging"
	"crm_pipeline/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	catalogSource string
	catalogFile   string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "pipelinectl",
	Short: "Inspect and drive the CRM deal pipeline board",
	Long: `pipelinectl seeds a deal board from the stage catalog
(STAGE_CATALOG_SOURCE: memory, yaml or dynamodb) and prints it,
summarizes its metrics, or replays a script of board commands.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose, "text")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog-source", "", "stage catalog source (overrides STAGE_CATALOG_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "stage catalog YAML file (overrides STAGE_CATALOG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(boardCmd, metricsCmd, replayCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the command-line overrides.
func loadConfig() (*config.Config, error) {
	if catalogSource != "" {
		os.Setenv("STAGE_CATALOG_SOURCE", catalogSource)
	}
	if catalogFile != "" {
		os.Setenv("STAGE_CATALOG_FILE", catalogFile)
	}
	return config.Load()
}

func newPipelineUseCase(ctx context.Context) (*usecase.PipelineUseCase, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewStageCatalogRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("stage catalog: %w", err)
	}
	return usecase.NewPipelineUseCase(ctx, repo)
}
