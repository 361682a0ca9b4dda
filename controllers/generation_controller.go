package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neuroad-server/models"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/nanobanana"
	"neuroad-server/services"
)

type GenerationController struct {
	generationService *services.GenerationService
}

func NewGenerationController() *GenerationController {
	return &GenerationController{
		generationService: services.NewGenerationService(),
	}
}

// @Summary Generate ad images
// @Description Render prompts for the project and run image generation
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerateContentRequest true "Generation parameters"
// @Success 200 {object} services.GenerationResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/generate-content [post]
func (c *GenerationController) GenerateContent(ctx *gin.Context) {
	var req models.GenerateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := c.generationService.GenerateContent(&req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Project not found",
			})
			return
		}
		if errors.Is(err, nanobanana.ErrAPIKeyNotConfigured) {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
		logger.Errorf("Content generation failed for %s: %v", req.ProjectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Generate ad video
// @Description Video generation is disabled; the endpoint reports why
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerateVideoRequest true "Generation parameters"
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 501 {object} map[string]interface{}
// @Router /api/generate-video [post]
func (c *GenerationController) GenerateVideo(ctx *gin.Context) {
	var req models.GenerateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := c.generationService.GenerateVideo(&req)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
		})
	case errors.Is(err, services.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": "Project not found",
		})
	case errors.Is(err, services.ErrVideoKeyNotConfigured):
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrVideoDisabled):
		ctx.JSON(http.StatusNotImplemented, gin.H{
			"error": err.Error(),
		})
	default:
		logger.Errorf("Video generation failed for %s: %v", req.ProjectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}
