package repository

import (
	"context"
	"fmt"

	"crm_pipeline/internal/infrastructure/config"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// NewStageCatalogRepository picks the stage catalog source configured by STAGE_CATALOG_SOURCE.
func NewStageCatalogRepository(ctx context.Context, cfg *config.Config) (interfaces.IStageCatalogRepository, error) {
	log.WithField("source", cfg.StageCatalogSource).Info("[pipeline][catalog] selecting stage catalog")
	switch cfg.StageCatalogSource {
	case config.CatalogSourceMemory, "":
		return NewStageCatalogMemoryRepository(), nil
	case config.CatalogSourceYAML:
		repo, err := NewStageCatalogYAMLRepository(cfg.StageCatalogFile)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.CatalogSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewStageCatalogDynamoRepository(ddb, cfg.StageCatalogTable), nil
	default:
		return nil, fmt.Errorf("unknown stage catalog source %q", cfg.StageCatalogSource)
	}
}
