package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neuroad-server/middleware"
	"neuroad-server/models"
	"neuroad-server/pkg/logger"
	"neuroad-server/services"
)

type ProjectController struct {
	projectService *services.ProjectService
}

func NewProjectController() *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(),
	}
}

// @Summary Create project
// @Description Create a draft project, owned by the session user when present
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.ProjectCreateRequest true "Project data"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req models.ProjectCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	project, err := c.projectService.CreateProject(&req, middleware.GetUserID(ctx))
	if err != nil {
		logger.Errorf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary List projects
// @Description Newest first, scoped to the session user when authenticated
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]interface{}
// @Router /api/projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjects(middleware.GetUserID(ctx))
	if err != nil {
		logger.Errorf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{}
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProject(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Project not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Project not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Project deleted",
	})
}
