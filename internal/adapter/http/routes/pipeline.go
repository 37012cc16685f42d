package routes

import (
	"crm_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPipeline = "/pipeline"
	PathDeals    = "/deals"
)

func addPipelineRoutes(rg *gin.RouterGroup, pipelineHandler *handlers.PipelineHandler, idempotent gin.HandlerFunc) {
	board := rg.Group(PathPipeline)
	{
		board.GET("", pipelineHandler.GetBoard)
		board.GET("/metrics", pipelineHandler.GetMetrics)
	}

	commands := rg.Group(PathPipeline, idempotent)
	{
		// Drag-and-drop.
		commands.POST("/reorder", pipelineHandler.Reorder)
		commands.POST("/move", pipelineHandler.Move)
		commands.POST("/drop", pipelineHandler.Drop)
		commands.POST("/reset", pipelineHandler.Reset)
	}

	deals := rg.Group(PathPipeline+PathDeals, idempotent)
	{
		deals.POST("", pipelineHandler.CreateDeal)
		deals.GET("/:deal_id", pipelineHandler.GetDeal)
		deals.PATCH("/:deal_id", pipelineHandler.UpdateDeal)
		deals.DELETE("/:deal_id", pipelineHandler.DeleteDeal)
	}
}
