package main

import (
	"fmt"
	"os"

	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

var pushFrom string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the stage catalog",
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Write stage definitions to the DynamoDB stage table",
	Long: `Push replaces the stages in STAGE_CATALOG_TABLE so the API can run
with STAGE_CATALOG_SOURCE=dynamodb. Stages come from --from (a catalog
YAML file) or the built-in sample catalog. Stages already in the table but
absent from the pushed catalog are deleted. Deals are never written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		stages := repository.SampleCatalog().Stages
		if pushFrom != "" {
			stages, err = stagesFromFile(pushFrom)
			if err != nil {
				return err
			}
		}

		if _, err := usecase.BuildBoard(interfaces.Catalog{Stages: stages}); err != nil {
			return err
		}

		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return err
		}
		repo := repository.NewStageCatalogDynamoRepository(ddb, cfg.StageCatalogTable)
		if err := repo.Save(ctx, stages); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pushed %d stages to %s\n", len(stages), repo.TableName())
		return nil
	},
}

func init() {
	catalogPushCmd.Flags().StringVar(&pushFrom, "from", "", "catalog YAML file to read stages from")
	catalogCmd.AddCommand(catalogPushCmd)
}

func stagesFromFile(path string) ([]entities.StageDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := repository.ParseStageCatalogYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c.Stages, nil
}
