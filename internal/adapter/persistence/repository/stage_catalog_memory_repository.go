package repository

import (
	"context"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"
)

// StageCatalogMemoryRepository serves the built-in sample pipeline: the six
// sales stages with their targets and one deal each, plus a "Closed Lost" column.
type StageCatalogMemoryRepository struct {
	catalog interfaces.Catalog
}

var _ interfaces.IStageCatalogRepository = (*StageCatalogMemoryRepository)(nil)

func NewStageCatalogMemoryRepository() *StageCatalogMemoryRepository {
	return &StageCatalogMemoryRepository{catalog: SampleCatalog()}
}

// NewStageCatalogMemoryRepositoryWith serves a caller-provided catalog.
func NewStageCatalogMemoryRepositoryWith(c interfaces.Catalog) *StageCatalogMemoryRepository {
	return &StageCatalogMemoryRepository{catalog: c}
}

func (r *StageCatalogMemoryRepository) Load(_ context.Context) (interfaces.Catalog, error) {
	out := interfaces.Catalog{
		Stages: append([]entities.StageDefinition(nil), r.catalog.Stages...),
		Deals:  make(map[string][]entities.Deal, len(r.catalog.Deals)),
	}
	for stageID, deals := range r.catalog.Deals {
		out.Deals[stageID] = append([]entities.Deal(nil), deals...)
	}
	return out, nil
}

// SampleCatalog returns a fresh copy of the sample pipeline.
func SampleCatalog() interfaces.Catalog {
	return interfaces.Catalog{
		Stages: []entities.StageDefinition{
			{ID: "lead", Title: "New Leads", Color: "bg-purple-50", Target: floatPtr(50000), Probability: intPtr(20)},
			{ID: "contact", Title: "First Contact", Color: "bg-blue-50", Target: floatPtr(75000), Probability: intPtr(35)},
			{ID: "meeting", Title: "Meeting Scheduled", Color: "bg-cyan-50", Target: floatPtr(100000), Probability: intPtr(45)},
			{ID: "proposal", Title: "Proposal", Color: "bg-yellow-50", Target: floatPtr(200000), Probability: intPtr(65)},
			{ID: "negotiation", Title: "Negotiation", Color: "bg-orange-50", Target: floatPtr(250000), Probability: intPtr(80)},
			{ID: "closed", Title: "Closed Won", Color: "bg-green-50", Target: floatPtr(300000), Probability: intPtr(100), Outcome: entities.StageOutcomeWon},
			{ID: "lost", Title: "Closed Lost", Color: "bg-red-50", Probability: intPtr(0), Outcome: entities.StageOutcomeLost},
		},
		Deals: map[string][]entities.Deal{
			"lead": {
				sampleDeal("1", "Cloud Migration Project", "CloudTech Solutions", "David Chen", 35000, 20, "2025-07-15", entities.DealStatusActive),
			},
			"contact": {
				sampleDeal("2", "AI Implementation", "InnovateAI Corp", "Sarah Lee", 85000, 35, "2025-07-20", entities.DealStatusActive),
			},
			"meeting": {
				sampleDeal("3", "Digital Transformation", "Transform Industries", "Michael Ross", 150000, 45, "2025-07-25", entities.DealStatusActive),
			},
			"proposal": {
				sampleDeal("4", "Security Suite Upgrade", "SecureNet Inc", "Emily Wong", 95000, 65, "2025-07-30", entities.DealStatusActive),
			},
			"negotiation": {
				sampleDeal("5", "Enterprise CRM Implementation", "Global Systems Ltd", "James Wilson", 200000, 80, "2025-08-05", entities.DealStatusActive),
			},
			"closed": {
				sampleDeal("6", "Data Center Migration", "DataCore Solutions", "Anna Martinez", 175000, 100, "2025-06-15", entities.DealStatusWon),
			},
		},
	}
}

func sampleDeal(id, title, company, contact string, value float64, probability int, due string, status entities.DealStatus) entities.Deal {
	dueDate, _ := time.Parse(DateLayout, due)
	return entities.Deal{
		ID:          id,
		Title:       title,
		Company:     company,
		Contact:     contact,
		Value:       value,
		Probability: probability,
		DueDate:     dueDate,
		Status:      status,
	}
}
