package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"neuroad-server/config"
	"neuroad-server/pkg/logger"
)

// FileController handles reference-image uploads and serves stored blobs.
type FileController struct {
	uploadDir    string
	generatedDir string
}

func NewFileController() *FileController {
	return &FileController{
		uploadDir:    config.AppConfig.Storage.UploadPath,
		generatedDir: config.AppConfig.Storage.GeneratedPath,
	}
}

// @Summary Upload a reference image
// @Description Store the file under a generated name and return its URL
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/upload [post]
func (c *FileController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "File is required",
		})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	if err := ctx.SaveUploadedFile(file, filepath.Join(c.uploadDir, filename)); err != nil {
		logger.Errorf("Failed to save upload %s: %v", filename, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"url":      fmt.Sprintf("/api/uploads/%s", filename),
		"filename": filename,
	})
}

// @Summary Serve an uploaded file
// @Tags files
// @Produce octet-stream
// @Param filename path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /api/uploads/{filename} [get]
func (c *FileController) ServeUpload(ctx *gin.Context) {
	c.serve(ctx, c.uploadDir)
}

// @Summary Serve a generated image
// @Tags files
// @Produce octet-stream
// @Param filename path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /api/generated/{filename} [get]
func (c *FileController) ServeGenerated(ctx *gin.Context) {
	c.serve(ctx, c.generatedDir)
}

func (c *FileController) serve(ctx *gin.Context, dir string) {
	// filepath.Base strips any traversal components from the parameter.
	filename := filepath.Base(ctx.Param("filename"))
	path := filepath.Join(dir, filename)

	if _, err := os.Stat(path); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": "File not found",
		})
		return
	}

	ctx.File(path)
}
