package repository

import (
	"context"
	"errors"
	"sort"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const defaultStagesTableName = "pipeline_stages"

var ErrInvalidStageItem = errors.New("invalid stage item")

type stageItem struct {
	ID          string   `dynamodbav:"id"`
	Title       string   `dynamodbav:"title"`
	Color       string   `dynamodbav:"color,omitempty"`
	Target      *float64 `dynamodbav:"target,omitempty"`
	Probability *int     `dynamodbav:"probability,omitempty"`
	Outcome     string   `dynamodbav:"outcome,omitempty"`
	Position    int      `dynamodbav:"position"`
}

// StageTableAPI is the subset of the DynamoDB client the stage catalog needs.
type StageTableAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// StageCatalogDynamoRepository reads stage definitions from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - position (number) orders the columns on the board
//
// Only stage configuration lives in the table; deals are never persisted, so
// boards seeded from this source start empty.

type StageCatalogDynamoRepository struct {
	ddb       StageTableAPI
	tableName string
}

var _ interfaces.IStageCatalogRepository = (*StageCatalogDynamoRepository)(nil)

// NewStageCatalogDynamoRepository binds the repository to tableName, falling
// back to pipeline_stages when it is empty.
func NewStageCatalogDynamoRepository(ddb StageTableAPI, tableName string) *StageCatalogDynamoRepository {
	if tableName == "" {
		tableName = defaultStagesTableName
	}
	return &StageCatalogDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *StageCatalogDynamoRepository) TableName() string {
	return r.tableName
}

func (r *StageCatalogDynamoRepository) Load(ctx context.Context) (interfaces.Catalog, error) {
	items, err := r.scan(ctx)
	if err != nil {
		return interfaces.Catalog{}, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})

	c := interfaces.Catalog{Stages: make([]entities.StageDefinition, 0, len(items))}
	for _, it := range items {
		if it.ID == "" {
			return interfaces.Catalog{}, ErrInvalidStageItem
		}
		c.Stages = append(c.Stages, fromStageItem(it))
	}
	log.WithFields(log.Fields{"table": r.tableName, "stages": len(c.Stages)}).Info("[pipeline][catalog] dynamodb loaded")
	return c, nil
}

func (r *StageCatalogDynamoRepository) scan(ctx context.Context) ([]stageItem, error) {
	var items []stageItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			log.WithError(err).WithField("table", r.tableName).Error("[pipeline][catalog] dynamodb scan failed")
			return nil, err
		}
		var batch []stageItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// Save makes the table hold exactly defs, in board order. Items with the same
// id are replaced and stages missing from defs are deleted after the writes.
func (r *StageCatalogDynamoRepository) Save(ctx context.Context, defs []entities.StageDefinition) error {
	keep := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return ErrInvalidStageItem
		}
		keep[def.ID] = struct{}{}
	}
	existing, err := r.scan(ctx)
	if err != nil {
		return err
	}

	for i, def := range defs {
		av, err := attributevalue.MarshalMap(toStageItem(def, i))
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			log.WithError(err).WithFields(log.Fields{"table": r.tableName, "stage_id": def.ID}).Error("[pipeline][catalog] dynamodb put failed")
			return err
		}
	}

	removed := 0
	for _, it := range existing {
		if _, ok := keep[it.ID]; ok || it.ID == "" {
			continue
		}
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: it.ID}},
		}); err != nil {
			log.WithError(err).WithFields(log.Fields{"table": r.tableName, "stage_id": it.ID}).Error("[pipeline][catalog] dynamodb delete failed")
			return err
		}
		removed++
	}
	log.WithFields(log.Fields{"table": r.tableName, "stages": len(defs), "removed": removed}).Info("[pipeline][catalog] dynamodb saved")
	return nil
}

func toStageItem(def entities.StageDefinition, position int) stageItem {
	return stageItem{
		ID:          def.ID,
		Title:       def.Title,
		Color:       def.Color,
		Target:      def.Target,
		Probability: def.Probability,
		Outcome:     string(def.Outcome),
		Position:    position,
	}
}

func fromStageItem(it stageItem) entities.StageDefinition {
	return entities.StageDefinition{
		ID:          it.ID,
		Title:       it.Title,
		Color:       it.Color,
		Target:      it.Target,
		Probability: it.Probability,
		Outcome:     entities.StageOutcome(it.Outcome),
	}
}
