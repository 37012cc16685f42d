package handlers

import (
	"errors"
	"net/http"

	request "crm_pipeline/internal/adapter/http/dto/request"
	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/adapter/http/validation"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidCommandPayload = pkg.NewDomainErrorSimple("INVALID_COMMAND", "Invalid board command payload", http.StatusBadRequest)
	errInvalidDealPayload    = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)
	errInvalidFilter         = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid board filter", http.StatusBadRequest)
)

// PipelineHandler serves the deal board: reads, drag-and-drop commands and
// the add/edit/delete deal forms.
type PipelineHandler struct {
	usecase   usecase.IPipelineUseCase
	validator *validation.Validator
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc, validator: validation.New()}
}

// GetBoard godoc
// @Summary      Get the deal board
// @Description  Returns every stage with its deals. search and min_value project the board without changing it.
// @Tags         pipeline
// @Produce      json
// @Param        search     query  string  false  "Case-insensitive title search"
// @Param        min_value  query  number  false  "Minimum deal value"
// @Success      200  {object}  response.BoardResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline [get]
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	var query request.BoardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidFilter.HTTPStatus, errInvalidFilter.ToHTTPError())
		return
	}
	if err := h.validator.Struct(query); err != nil {
		c.JSON(errInvalidFilter.HTTPStatus, errInvalidFilter.ToHTTPError())
		return
	}

	criteria := pipeline.Criteria{SearchTerm: query.Search}
	if query.MinValue != nil {
		criteria.MinValue = *query.MinValue
	}
	c.JSON(http.StatusOK, response.FromBoard(h.usecase.FilterBoard(c.Request.Context(), criteria)))
}

// GetMetrics godoc
// @Summary      Get board metrics
// @Description  Per-stage totals, weighted values, target progress, and the board-wide win rate.
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  response.MetricsResponse
// @Router       /pipeline/metrics [get]
func (h *PipelineHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMetrics(h.usecase.GetMetrics(c.Request.Context())))
}

// Reorder godoc
// @Summary      Reorder a deal within its stage
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        request  body  request.ReorderRequest  true  "Reorder command"
// @Success      200  {object}  response.CommandResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/reorder [post]
func (h *PipelineHandler) Reorder(c *gin.Context) {
	var payload request.ReorderRequest
	if !h.bind(c, &payload, errInvalidCommandPayload) {
		return
	}
	res := h.usecase.ReorderWithinStage(c.Request.Context(), payload.StageID, *payload.FromIndex, *payload.ToIndex)
	c.JSON(http.StatusOK, response.FromCommandResult(res))
}

// Move godoc
// @Summary      Move a deal to another stage
// @Description  The deal takes the destination stage's probability and status.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        request  body  request.MoveRequest  true  "Move command"
// @Success      200  {object}  response.CommandResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/move [post]
func (h *PipelineHandler) Move(c *gin.Context) {
	var payload request.MoveRequest
	if !h.bind(c, &payload, errInvalidCommandPayload) {
		return
	}
	res := h.usecase.MoveAcrossStages(c.Request.Context(), payload.DealID, payload.SourceStageID, payload.DestStageID, *payload.DestIndex)
	c.JSON(http.StatusOK, response.FromCommandResult(res))
}

// Drop godoc
// @Summary      Apply a drag-and-drop result
// @Description  A null destination leaves the board unchanged.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        request  body  request.DropRequest  true  "Drop result"
// @Success      200  {object}  response.CommandResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/drop [post]
func (h *PipelineHandler) Drop(c *gin.Context) {
	var payload request.DropRequest
	if !h.bind(c, &payload, errInvalidCommandPayload) {
		return
	}
	drop := pipeline.DropResult{
		Source: pipeline.DropLocation{StageID: payload.Source.StageID, Index: *payload.Source.Index},
	}
	if payload.Destination != nil {
		drop.Destination = &pipeline.DropLocation{StageID: payload.Destination.StageID, Index: *payload.Destination.Index}
	}
	c.JSON(http.StatusOK, response.FromCommandResult(h.usecase.ApplyDrop(c.Request.Context(), drop)))
}

// CreateDeal godoc
// @Summary      Add a deal
// @Description  Appends a new deal to stage_id, or to the first stage when omitted.
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        request  body  request.DealRequest  true  "Deal form"
// @Success      201  {object}  response.DealCreatedResponse
// @Success      200  {object}  response.DealCreatedResponse  "Unknown stage; nothing added"
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/deals [post]
func (h *PipelineHandler) CreateDeal(c *gin.Context) {
	var payload request.DealRequest
	if !h.bind(c, &payload, errInvalidDealPayload) {
		return
	}
	draft, err := payload.ToDraft()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	deal, res, err := h.usecase.AddDeal(c.Request.Context(), payload.StageID, draft)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if !res.Applied {
		status = http.StatusOK
	}
	c.JSON(status, response.FromDealCreated(deal, res))
}

// GetDeal godoc
// @Summary      Get a deal
// @Tags         deals
// @Produce      json
// @Param        deal_id  path  string  true  "Deal ID"
// @Success      200  {object}  response.DealLocationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pipeline/deals/{deal_id} [get]
func (h *PipelineHandler) GetDeal(c *gin.Context) {
	loc, err := h.usecase.GetDeal(c.Request.Context(), c.Param("deal_id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDealLocation(loc))
}

// UpdateDeal godoc
// @Summary      Edit a deal
// @Description  Updates the given fields in place. Probability and status follow the stage and cannot be edited.
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        deal_id  path  string                    true  "Deal ID"
// @Param        request  body  request.DealPatchRequest  true  "Fields to change"
// @Success      200  {object}  response.CommandResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/deals/{deal_id} [patch]
func (h *PipelineHandler) UpdateDeal(c *gin.Context) {
	var payload request.DealPatchRequest
	if !h.bind(c, &payload, errInvalidDealPayload) {
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.EditDeal(c.Request.Context(), c.Param("deal_id"), patch)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCommandResult(res))
}

// DeleteDeal godoc
// @Summary      Delete a deal
// @Tags         deals
// @Produce      json
// @Param        deal_id  path  string  true  "Deal ID"
// @Success      200  {object}  response.CommandResponse
// @Router       /pipeline/deals/{deal_id} [delete]
func (h *PipelineHandler) DeleteDeal(c *gin.Context) {
	res := h.usecase.DeleteDeal(c.Request.Context(), c.Param("deal_id"))
	c.JSON(http.StatusOK, response.FromCommandResult(res))
}

// Reset godoc
// @Summary      Reset the board
// @Description  Discards every change and reseeds the board from the stage catalog.
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  response.BoardResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pipeline/reset [post]
func (h *PipelineHandler) Reset(c *gin.Context) {
	board, err := h.usecase.Reset(c.Request.Context())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board))
}

// bind decodes and validates a JSON body, answering with invalid on failure.
func (h *PipelineHandler) bind(c *gin.Context, payload interface{}, invalid *pkg.AppError) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		log.WithError(err).Debug("[pipeline][handler] bind failed")
		c.JSON(invalid.HTTPStatus, invalid.ToHTTPError())
		return false
	}
	if err := h.validator.Struct(payload); err != nil {
		log.WithField("fields", validation.Details(err)).Debug("[pipeline][handler] validation failed")
		c.JSON(invalid.HTTPStatus, invalid.ToHTTPError())
		return false
	}
	return true
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealTitle), errors.Is(err, usecase.ErrInvalidDealValue):
		return pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDealID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyStageCatalog), errors.Is(err, usecase.ErrInvalidStageID),
		errors.Is(err, usecase.ErrDuplicateStageID), errors.Is(err, usecase.ErrDuplicateDealID),
		errors.Is(err, usecase.ErrInvalidStageCatalog):
		return pkg.NewDomainError("INVALID_STAGE_CATALOG", "Stage catalog is invalid", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
