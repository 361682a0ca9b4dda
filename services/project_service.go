package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neuroad-server/models"
	"neuroad-server/pkg/database"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/queue"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService() *ProjectService {
	return &ProjectService{
		db: database.GetDB(),
	}
}

func (s *ProjectService) CreateProject(req *models.ProjectCreateRequest, userID *string) (*models.Project, error) {
	language := req.Language
	if language == "" {
		language = "ar"
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:                      uuid.NewString(),
		UserID:                  userID,
		ContentType:             req.ContentType,
		CompanyName:             req.CompanyName,
		CompanyDescription:      req.CompanyDescription,
		Strengths:               models.StringArray(req.Strengths),
		Images:                  models.StringArray(images),
		DesignGoal:              req.DesignGoal,
		Platform:                req.Platform,
		PsychologicalStrategyID: req.PsychologicalStrategyID,
		ScrapedData:             models.JSON(req.ScrapedData),
		BrandColors:             models.StringMap(req.BrandColors),
		Language:                language,
		GeneratedImages:         models.StringArray{},
		GeneratedVideos:         models.StringArray{},
		GeneratedCaptions:       models.CaptionList{},
		Status:                  models.StatusDraft,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.db.Create(project).Error; err != nil {
		logger.Errorf("Failed to create project: %v", err)
		return nil, errors.New("failed to create project")
	}

	queue.PublishProjectEvent(queue.EventProjectCreated, project.ID, map[string]interface{}{
		"company_name": project.CompanyName,
		"platform":     project.Platform,
	})

	logger.Infof("Project created successfully: %s", project.ID)
	return project, nil
}

// ListProjects returns the newest 100 projects, scoped to the user when one
// is authenticated.
func (s *ProjectService) ListProjects(userID *string) ([]models.Project, error) {
	var projects []models.Project

	query := s.db.Model(&models.Project{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Order("created_at DESC").Limit(100).Find(&projects).Error; err != nil {
		logger.Errorf("Failed to list projects: %v", err)
		return nil, errors.New("failed to list projects")
	}

	return projects, nil
}

func (s *ProjectService) GetProject(projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		logger.Errorf("Failed to get project: %v", err)
		return nil, errors.New("failed to get project")
	}

	return &project, nil
}

// DeleteProject removes a project by id. Deletion is explicit only; nothing
// deletes projects automatically.
func (s *ProjectService) DeleteProject(projectID string) error {
	result := s.db.Delete(&models.Project{}, "id = ?", projectID)
	if result.Error != nil {
		logger.Errorf("Failed to delete project: %v", result.Error)
		return errors.New("failed to delete project")
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	queue.PublishProjectEvent(queue.EventProjectDeleted, projectID, nil)
	return nil
}
