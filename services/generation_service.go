package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neuroad-server/config"
	"neuroad-server/models"
	"neuroad-server/pkg/catalog"
	"neuroad-server/pkg/database"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/nanobanana"
	"neuroad-server/pkg/prompt"
	"neuroad-server/pkg/queue"
)

var (
	// ErrVideoDisabled is the permanent short-circuit of the video pipeline.
	// Reaching it is defined behavior, surfaced as 501.
	ErrVideoDisabled = errors.New("video generation is currently disabled due to missing dependencies")

	ErrVideoKeyNotConfigured = errors.New("VIDEO_API_KEY not configured")
)

// maxVariations caps how many image variations one generation run may
// request, regardless of the caller's count.
const maxVariations = 3

type GenerationService struct {
	db           *gorm.DB
	client       *nanobanana.Client
	generatedDir string
	videoAPIKey  string
}

func NewGenerationService() *GenerationService {
	cfg := config.AppConfig
	return &GenerationService{
		db:           database.GetDB(),
		client:       nanobanana.NewClient(cfg),
		generatedDir: cfg.Storage.GeneratedPath,
		videoAPIKey:  cfg.Video.APIKey,
	}
}

// GenerationResult is the response of one image generation run.
type GenerationResult struct {
	Success         bool           `json:"success"`
	Images          []string       `json:"images"`
	Caption         models.Caption `json:"caption"`
	VariationsCount int            `json:"variations_count"`
}

// GenerateContent runs the image generation pipeline for a project:
// draft -> generating -> completed when at least one variation succeeded,
// failed otherwise. Successful variations append to generated_images; the
// caption replaces generated_captions wholesale.
func (s *GenerationService) GenerateContent(req *models.GenerateContentRequest) (*GenerationResult, error) {
	project, err := s.loadProject(req.ProjectID)
	if err != nil {
		return nil, err
	}

	s.setStatus(project.ID, models.StatusGenerating)

	aspectRatio := catalog.AspectRatio(project.Platform)
	generated := []string{}

	for i := 1; i <= clampVariationCount(req.VariationCount); i++ {
		imagePrompt := prompt.BuildImagePrompt(project, i)
		if req.CustomInstructions != "" {
			imagePrompt += "\n\nADDITIONAL INSTRUCTIONS: " + req.CustomInstructions
		}

		logger.Infof("Generating image variation %d with Nano Banana Pro...", i)

		// The remote task outlives a client disconnect, so the poll loop
		// runs on a background context rather than the request's.
		imageURL, err := s.client.GenerateImage(context.Background(), imagePrompt, aspectRatio)
		if err != nil {
			// Missing credential is fatal: record the failure, then surface it.
			s.setStatus(project.ID, models.StatusFailed)
			queue.PublishProjectEvent(queue.EventGenerationFailed, project.ID, map[string]interface{}{
				"reason": err.Error(),
			})
			return nil, err
		}
		if imageURL == "" {
			continue
		}

		if localURL := s.downloadAndSave(imageURL, project.ID, i); localURL != "" {
			generated = append(generated, localURL)
			logger.Infof("Generated image %d: %s", i, localURL)
		}
	}

	strategy := catalog.StrategyByID(project.PsychologicalStrategyID)
	caption := prompt.BuildCaption(project, strategy)

	status := models.StatusFailed
	eventType := queue.EventGenerationFailed
	if len(generated) > 0 {
		status = models.StatusCompleted
		eventType = queue.EventGenerationCompleted
	}

	s.appendGenerationResults(project.ID, generated, caption, status)

	queue.PublishProjectEvent(eventType, project.ID, map[string]interface{}{
		"variations": len(generated),
	})

	return &GenerationResult{
		Success:         len(generated) > 0,
		Images:          generated,
		Caption:         caption,
		VariationsCount: len(generated),
	}, nil
}

// GenerateVideo validates its credential, then fails with the permanent
// "disabled" error. The project ends in status failed either way.
func (s *GenerationService) GenerateVideo(req *models.GenerateVideoRequest) error {
	project, err := s.loadProject(req.ProjectID)
	if err != nil {
		return err
	}

	s.setStatus(project.ID, models.StatusGeneratingVideo)

	videoPrompt := prompt.BuildVideoPrompt(project)
	if req.CustomInstructions != "" {
		videoPrompt += "\n\nADDITIONAL: " + req.CustomInstructions
	}
	logger.Debugf("Video prompt prepared (%d bytes)", len(videoPrompt))

	if s.videoAPIKey == "" {
		s.setStatus(project.ID, models.StatusFailed)
		queue.PublishProjectEvent(queue.EventVideoFailed, project.ID, map[string]interface{}{
			"reason": ErrVideoKeyNotConfigured.Error(),
		})
		return ErrVideoKeyNotConfigured
	}

	s.setStatus(project.ID, models.StatusFailed)
	queue.PublishProjectEvent(queue.EventVideoFailed, project.ID, map[string]interface{}{
		"reason": ErrVideoDisabled.Error(),
	})
	return ErrVideoDisabled
}

// clampVariationCount applies the caller's count, defaulting an absent value
// to 3 and never exceeding maxVariations.
func clampVariationCount(requested *int) int {
	if requested == nil {
		return maxVariations
	}
	if *requested > maxVariations {
		return maxVariations
	}
	return *requested
}

func (s *GenerationService) loadProject(projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		logger.Errorf("Failed to load project: %v", err)
		return nil, errors.New("failed to load project")
	}
	return &project, nil
}

func (s *GenerationService) setStatus(projectID, status string) {
	err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}).Error
	if err != nil {
		logger.Errorf("Failed to update project status: %v", err)
	}
}

// appendGenerationResults appends new images (the array only grows) and
// replaces the caption list wholesale, as independent field merges with no
// lock around them.
func (s *GenerationService) appendGenerationResults(projectID string, images []string, caption models.Caption, status string) {
	var current models.Project
	if err := s.db.First(&current, "id = ?", projectID).Error; err != nil {
		logger.Errorf("Failed to reload project for update: %v", err)
		return
	}

	err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"generated_images":   append(current.GeneratedImages, images...),
		"generated_captions": models.CaptionList{caption},
		"status":             status,
		"updated_at":         time.Now().UTC(),
	}).Error
	if err != nil {
		logger.Errorf("Failed to store generation results: %v", err)
	}
}

// downloadAndSave fetches a generated asset and persists it under the
// generated dir; any failure resolves to "" and is only logged.
func (s *GenerationService) downloadAndSave(imageURL, projectID string, variation int) string {
	data, err := s.client.Download(context.Background(), imageURL)
	if err != nil {
		logger.Errorf("Error downloading image: %v", err)
		return ""
	}

	if err := os.MkdirAll(s.generatedDir, 0755); err != nil {
		logger.Errorf("Failed to create generated dir: %v", err)
		return ""
	}

	filename := fmt.Sprintf("%s_v%d_%s.png", projectID, variation, uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.generatedDir, filename), data, 0644); err != nil {
		logger.Errorf("Failed to save generated image: %v", err)
		return ""
	}

	return "/api/generated/" + filename
}
