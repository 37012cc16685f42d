package request

import (
	"strings"
	"time"

	"crm_pipeline/internal/adapter/http/validation"
	"crm_pipeline/internal/domain/entities"
)

// DealRequest is the add-deal form. StageID is optional; the first stage is used when empty.
type DealRequest struct {
	StageID     string   `json:"stage_id"`
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company"`
	Contact     string   `json:"contact"`
	Description string   `json:"description"`
	Value       *float64 `json:"value" validate:"required,gte=0"`
	DueDate     string   `json:"due_date" validate:"required,date"`
}

func (r DealRequest) ToDraft() (entities.DealDraft, error) {
	due, err := time.Parse(validation.DateLayout, strings.TrimSpace(r.DueDate))
	if err != nil {
		return entities.DealDraft{}, err
	}
	draft := entities.DealDraft{
		Title:       r.Title,
		Company:     r.Company,
		Contact:     r.Contact,
		Description: r.Description,
		DueDate:     due,
	}
	if r.Value != nil {
		draft.Value = *r.Value
	}
	return draft, nil
}

// DealPatchRequest is the edit-deal form. Omitted fields stay as they are.
// Probability and status belong to the stage and cannot be patched.
type DealPatchRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Company     *string  `json:"company"`
	Contact     *string  `json:"contact"`
	Description *string  `json:"description"`
	Value       *float64 `json:"value" validate:"omitempty,gte=0"`
	DueDate     *string  `json:"due_date" validate:"omitempty,date"`
}

func (r DealPatchRequest) ToPatch() (entities.DealPatch, error) {
	patch := entities.DealPatch{
		Title:       r.Title,
		Company:     r.Company,
		Contact:     r.Contact,
		Description: r.Description,
		Value:       r.Value,
	}
	if r.DueDate != nil {
		due, err := time.Parse(validation.DateLayout, strings.TrimSpace(*r.DueDate))
		if err != nil {
			return entities.DealPatch{}, err
		}
		patch.DueDate = &due
	}
	return patch, nil
}
