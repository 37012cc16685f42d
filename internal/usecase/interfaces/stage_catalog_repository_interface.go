package interfaces

import (
	"context"
	"crm_pipeline/internal/domain/entities"
)

// Catalog is everything needed to seed a pipeline board: the ordered stage
// definitions and, optionally, sample deals per stage id.
type Catalog struct {
	Stages []entities.StageDefinition
	Deals  map[string][]entities.Deal
}

// IStageCatalogRepository abstracts where stage configuration comes from.
//
// Implementations exist for:
//   - built-in sample data (the default)
//   - a YAML file
//   - a DynamoDB table

type IStageCatalogRepository interface {
	Load(ctx context.Context) (Catalog, error)
}
