package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrMissingStageCatalogFile = errors.New("missing STAGE_CATALOG_FILE")

type stageCatalogFile struct {
	Stages []entities.StageDefinition `yaml:"stages"`
	Deals  map[string][]dealRecord    `yaml:"deals"`
}

type dealRecord struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Company     string  `yaml:"company"`
	Contact     string  `yaml:"contact"`
	Description string  `yaml:"description"`
	Value       float64 `yaml:"value"`
	Probability int     `yaml:"probability"`
	DueDate     string  `yaml:"due_date"`
	Status      string  `yaml:"status"`
}

// StageCatalogYAMLRepository reads stage definitions (and optional seed deals)
// from a YAML file, so the stage set and probability table live outside the binary.
//
// File shape:
//
//	stages:
//	  - {id: lead, title: New Leads, target: 50000, probability: 20}
//	  - {id: closed, title: Closed Won, probability: 100, outcome: won}
//	deals:
//	  lead:
//	    - {id: "1", title: Cloud Migration Project, value: 35000, due_date: 2025-07-15}
type StageCatalogYAMLRepository struct {
	path string
}

var _ interfaces.IStageCatalogRepository = (*StageCatalogYAMLRepository)(nil)

func NewStageCatalogYAMLRepository(path string) (*StageCatalogYAMLRepository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrMissingStageCatalogFile
	}
	return &StageCatalogYAMLRepository{path: path}, nil
}

func (r *StageCatalogYAMLRepository) Load(_ context.Context) (interfaces.Catalog, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		log.WithError(err).WithField("path", r.path).Error("[pipeline][catalog] yaml read failed")
		return interfaces.Catalog{}, err
	}
	c, err := ParseStageCatalogYAML(bytes.NewReader(raw))
	if err != nil {
		return interfaces.Catalog{}, fmt.Errorf("stage catalog %s: %w", r.path, err)
	}
	log.WithFields(log.Fields{"path": r.path, "stages": len(c.Stages)}).Info("[pipeline][catalog] yaml loaded")
	return c, nil
}

// ParseStageCatalogYAML decodes a catalog document. Unknown keys are rejected.
func ParseStageCatalogYAML(rd io.Reader) (interfaces.Catalog, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var f stageCatalogFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return interfaces.Catalog{}, err
	}

	c := interfaces.Catalog{Stages: f.Stages, Deals: make(map[string][]entities.Deal, len(f.Deals))}
	for stageID, records := range f.Deals {
		deals := make([]entities.Deal, 0, len(records))
		for _, rec := range records {
			d, err := rec.toDeal()
			if err != nil {
				return interfaces.Catalog{}, fmt.Errorf("deal %q: %w", rec.ID, err)
			}
			deals = append(deals, d)
		}
		c.Deals[stageID] = deals
	}
	return c, nil
}

func (rec dealRecord) toDeal() (entities.Deal, error) {
	d := entities.Deal{
		ID:          rec.ID,
		Title:       rec.Title,
		Company:     rec.Company,
		Contact:     rec.Contact,
		Description: rec.Description,
		Value:       rec.Value,
		Probability: rec.Probability,
		Status:      entities.DealStatus(rec.Status),
	}
	if rec.DueDate != "" {
		due, err := time.Parse(DateLayout, rec.DueDate)
		if err != nil {
			return entities.Deal{}, err
		}
		d.DueDate = due
	}
	switch {
	case math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) || rec.Value < 0:
		return entities.Deal{}, fmt.Errorf("invalid value %v", rec.Value)
	case rec.Probability < 0 || rec.Probability > 100:
		return entities.Deal{}, fmt.Errorf("probability %d outside 0..100", rec.Probability)
	case d.Status != "" && !d.Status.IsValid():
		return entities.Deal{}, fmt.Errorf("unknown status %q", rec.Status)
	}
	return d, nil
}
