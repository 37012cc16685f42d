package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm_pipeline/internal/adapter/http/handlers/mocks"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func handlerBoard() pipeline.Board {
	lead, won := 20, 100
	defs := []entities.StageDefinition{
		{ID: "lead", Title: "New Leads", Probability: &lead},
		{ID: "closed", Title: "Closed Won", Probability: &won, Outcome: entities.StageOutcomeWon},
	}
	stages := []entities.Stage{entities.NewStage(defs[0]), entities.NewStage(defs[1])}
	stages[0].Deals = []entities.Deal{{ID: "1", Title: "Cloud Migration Project", Value: 35000, Probability: 20, Status: entities.DealStatusActive}}
	return pipeline.NewBoard(stages, pipeline.RulesFromDefinitions(defs))
}

func newPipelineRouter(t *testing.T) (*gin.Engine, *mocks.MockIPipelineUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPipelineUseCase(ctrl)
	h := NewPipelineHandler(uc)

	r := gin.New()
	r.GET("/v1/pipeline", h.GetBoard)
	r.GET("/v1/pipeline/metrics", h.GetMetrics)
	r.POST("/v1/pipeline/reorder", h.Reorder)
	r.POST("/v1/pipeline/move", h.Move)
	r.POST("/v1/pipeline/drop", h.Drop)
	r.POST("/v1/pipeline/reset", h.Reset)
	r.POST("/v1/pipeline/deals", h.CreateDeal)
	r.GET("/v1/pipeline/deals/:deal_id", h.GetDeal)
	r.PATCH("/v1/pipeline/deals/:deal_id", h.UpdateDeal)
	r.DELETE("/v1/pipeline/deals/:deal_id", h.DeleteDeal)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPipelineHandler_GetBoard(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().FilterBoard(gomock.Any(), pipeline.Criteria{}).Return(handlerBoard())

		w := doJSON(r, http.MethodGet, "/v1/pipeline", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		stages := decodeBody(t, w)["stages"].([]any)
		if len(stages) != 2 {
			t.Fatalf("expected 2 stages, got %d", len(stages))
		}
	})

	t.Run("search and min value", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().FilterBoard(gomock.Any(), pipeline.Criteria{SearchTerm: "cloud", MinValue: 1000}).Return(handlerBoard())

		w := doJSON(r, http.MethodGet, "/v1/pipeline?search=cloud&min_value=1000", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric min value", func(t *testing.T) {
		r, _ := newPipelineRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/pipeline?min_value=lots", "")
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_FILTER" {
			t.Fatalf("expected 400 INVALID_FILTER, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("negative min value", func(t *testing.T) {
		r, _ := newPipelineRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/pipeline?min_value=-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_GetMetrics(t *testing.T) {
	r, uc := newPipelineRouter(t)
	board := handlerBoard()
	uc.EXPECT().GetMetrics(gomock.Any()).Return(usecase.MetricsSnapshot{Board: board, Metrics: pipeline.Summarize(board)})

	w := doJSON(r, http.MethodGet, "/v1/pipeline/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	metrics := decodeBody(t, w)["metrics"].(map[string]any)
	if metrics["total_value"].(float64) != 35000 || metrics["weighted_value"].(float64) != 7000 {
		t.Fatalf("unexpected metrics: %v", metrics)
	}
}

func TestPipelineHandler_Commands(t *testing.T) {
	t.Run("reorder", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().ReorderWithinStage(gomock.Any(), "lead", 0, 2).Return(usecase.CommandResult{Applied: true, Board: handlerBoard()})

		w := doJSON(r, http.MethodPost, "/v1/pipeline/reorder", `{"stage_id":"lead","from_index":0,"to_index":2}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["applied"] != true {
			t.Fatalf("expected applied 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reorder missing index", func(t *testing.T) {
		r, _ := newPipelineRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/pipeline/reorder", `{"stage_id":"lead","from_index":0}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_COMMAND" {
			t.Fatalf("expected 400 INVALID_COMMAND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("move not applied", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().MoveAcrossStages(gomock.Any(), "999", "lead", "closed", 0).Return(usecase.CommandResult{Applied: false, Board: handlerBoard()})

		w := doJSON(r, http.MethodPost, "/v1/pipeline/move", `{"deal_id":"999","source_stage_id":"lead","dest_stage_id":"closed","dest_index":0}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["applied"] != false {
			t.Fatalf("expected not applied 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("drop", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		want := pipeline.DropResult{
			Source:      pipeline.DropLocation{StageID: "lead", Index: 0},
			Destination: &pipeline.DropLocation{StageID: "closed", Index: 0},
		}
		uc.EXPECT().ApplyDrop(gomock.Any(), want).Return(usecase.CommandResult{Applied: true, Board: handlerBoard()})

		w := doJSON(r, http.MethodPost, "/v1/pipeline/drop", `{"source":{"stage_id":"lead","index":0},"destination":{"stage_id":"closed","index":0}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("drop outside every stage", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().ApplyDrop(gomock.Any(), pipeline.DropResult{Source: pipeline.DropLocation{StageID: "lead", Index: 0}}).
			Return(usecase.CommandResult{Applied: false, Board: handlerBoard()})

		w := doJSON(r, http.MethodPost, "/v1/pipeline/drop", `{"source":{"stage_id":"lead","index":0},"destination":null}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["applied"] != false {
			t.Fatalf("expected not applied, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("drop without source", func(t *testing.T) {
		r, _ := newPipelineRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/pipeline/drop", `{"destination":{"stage_id":"closed","index":0}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reset", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().Reset(gomock.Any()).Return(handlerBoard(), nil)
		w := doJSON(r, http.MethodPost, "/v1/pipeline/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reset fails", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().Reset(gomock.Any()).Return(pipeline.Board{}, errors.New("ddb down"))
		w := doJSON(r, http.MethodPost, "/v1/pipeline/reset", "")
		if w.Code != http.StatusInternalServerError || decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("expected 500, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPipelineHandler_CreateDeal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
		draft := entities.DealDraft{Title: "ERP Rollout", Company: "Acme", Value: 12000, DueDate: due}
		created := entities.Deal{ID: "new-id", Title: "ERP Rollout", Company: "Acme", Value: 12000, Probability: 20, DueDate: due, Status: entities.DealStatusActive}
		uc.EXPECT().AddDeal(gomock.Any(), "", draft).Return(created, usecase.CommandResult{Applied: true, Board: handlerBoard()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/pipeline/deals", `{"title":"ERP Rollout","company":"Acme","value":12000,"due_date":"2025-09-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		deal := decodeBody(t, w)["deal"].(map[string]any)
		if deal["id"] != "new-id" || deal["due_date"] != "2025-09-01" || deal["probability"].(float64) != 20 {
			t.Fatalf("unexpected deal: %v", deal)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().AddDeal(gomock.Any(), "nope", gomock.Any()).Return(entities.Deal{}, usecase.CommandResult{Board: handlerBoard()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/pipeline/deals", `{"stage_id":"nope","title":"x","value":1,"due_date":"2025-09-01"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["applied"] != false {
			t.Fatalf("expected 200 not applied, got %d %s", w.Code, w.Body.String())
		}
	})

	invalid := map[string]string{
		"non numeric value": `{"title":"x","value":"a lot","due_date":"2025-09-01"}`,
		"negative value":    `{"title":"x","value":-10,"due_date":"2025-09-01"}`,
		"missing title":     `{"value":10,"due_date":"2025-09-01"}`,
		"bad date":          `{"title":"x","value":10,"due_date":"next week"}`,
		"broken json":       `{`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			r, _ := newPipelineRouter(t)
			w := doJSON(r, http.MethodPost, "/v1/pipeline/deals", body)
			if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_DEAL_INPUT" {
				t.Fatalf("expected 400 INVALID_DEAL_INPUT, got %d %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("usecase rejects title", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().AddDeal(gomock.Any(), "", gomock.Any()).Return(entities.Deal{}, usecase.CommandResult{}, usecase.ErrInvalidDealTitle)

		w := doJSON(r, http.MethodPost, "/v1/pipeline/deals", `{"title":"   ","value":10,"due_date":"2025-09-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_DealByID(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().GetDeal(gomock.Any(), "1").Return(usecase.DealLocation{Deal: entities.Deal{ID: "1"}, StageID: "lead", Index: 0}, nil)

		w := doJSON(r, http.MethodGet, "/v1/pipeline/deals/1", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["stage_id"] != "lead" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().GetDeal(gomock.Any(), "404").Return(usecase.DealLocation{}, usecase.ErrDealNotFound)

		w := doJSON(r, http.MethodGet, "/v1/pipeline/deals/404", "")
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "DEAL_NOT_FOUND" {
			t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("patch", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().EditDeal(gomock.Any(), "1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.DealPatch) (usecase.CommandResult, error) {
				if patch.Title == nil || *patch.Title != "Renamed" || patch.Value != nil {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return usecase.CommandResult{Applied: true, Board: handlerBoard()}, nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/pipeline/deals/1", `{"title":"Renamed"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["applied"] != true {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("patch negative value", func(t *testing.T) {
		r, _ := newPipelineRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/pipeline/deals/1", `{"value":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newPipelineRouter(t)
		uc.EXPECT().DeleteDeal(gomock.Any(), "1").Return(usecase.CommandResult{Applied: true, Board: handlerBoard()})

		w := doJSON(r, http.MethodDelete, "/v1/pipeline/deals/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapPipelineError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrInvalidDealValue, "INVALID_DEAL_INPUT", http.StatusBadRequest},
		{usecase.ErrInvalidDealID, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrDealNotFound, "DEAL_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrEmptyStageCatalog, "INVALID_STAGE_CATALOG", http.StatusInternalServerError},
		{fmt.Errorf("%w: deal 9 has probability 140 outside 0..100", usecase.ErrInvalidStageCatalog), "INVALID_STAGE_CATALOG", http.StatusInternalServerError},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		appErr := mapPipelineError(tc.err)
		if appErr.Code != tc.code || appErr.HTTPStatus != tc.status {
			t.Fatalf("%v: unexpected mapping %+v", tc.err, appErr)
		}
	}
}
