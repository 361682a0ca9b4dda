package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"neuroad-server/config"
	"neuroad-server/models"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/nanobanana"
)

func init() {
	logger.Logger = logrus.New()
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A shared in-memory database lives on one connection only.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	now := time.Now().UTC()
	project := &models.Project{
		ID:                      uuid.NewString(),
		ContentType:             "image",
		CompanyName:             "Nile Coffee",
		CompanyDescription:      "Specialty coffee roastery",
		Strengths:               models.StringArray{"fresh beans"},
		Images:                  models.StringArray{},
		DesignGoal:              "more store visits",
		Platform:                "post_square",
		PsychologicalStrategyID: "scarcity",
		Language:                "ar",
		GeneratedImages:         models.StringArray{},
		GeneratedVideos:         models.StringArray{},
		GeneratedCaptions:       models.CaptionList{},
		Status:                  models.StatusDraft,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func lifecycleService(t *testing.T, db *gorm.DB, baseURL, kieKey, videoKey string) *GenerationService {
	t.Helper()

	cfg := &config.Config{}
	cfg.KieAI.APIKey = kieKey
	cfg.KieAI.BaseURL = baseURL

	return &GenerationService{
		db:           db,
		client:       nanobanana.NewClient(cfg),
		generatedDir: t.TempDir(),
		videoAPIKey:  videoKey,
	}
}

func reloadProject(t *testing.T, db *gorm.DB, id string) *models.Project {
	t.Helper()
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	return &project
}

func intPointer(v int) *int {
	return &v
}

func TestGenerateContentCompleted(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/jobs/createTask":
			fmt.Fprint(w, `{"code": 200, "data": {"taskId": "t1"}}`)
		case "/api/v1/jobs/recordInfo":
			fmt.Fprintf(w,
				`{"code": 200, "data": {"taskId": "t1", "state": "success", "resultJson": "{\"resultUrls\": [\"%s/asset.png\"]}"}}`,
				srvURL)
		case "/asset.png":
			w.Write([]byte("png-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	db := testDB(t)
	project := seedProject(t, db)
	svc := lifecycleService(t, db, srv.URL, "test-key", "")

	result, err := svc.GenerateContent(&models.GenerateContentRequest{
		ProjectID:      project.ID,
		VariationCount: intPointer(1),
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if !result.Success {
		t.Error("result.Success = false, want true")
	}
	if result.VariationsCount != 1 || len(result.Images) != 1 {
		t.Fatalf("result = %d images, want 1", len(result.Images))
	}
	if !strings.HasPrefix(result.Images[0], "/api/generated/"+project.ID+"_v1_") {
		t.Errorf("image url = %q", result.Images[0])
	}

	// The asset must have been written under the generated dir.
	saved, err := os.ReadFile(filepath.Join(svc.generatedDir, filepath.Base(result.Images[0])))
	if err != nil {
		t.Fatalf("read saved asset: %v", err)
	}
	if string(saved) != "png-bytes" {
		t.Errorf("saved asset = %q", saved)
	}

	stored := reloadProject(t, db, project.ID)
	if stored.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", stored.Status)
	}
	if len(stored.GeneratedImages) != 1 {
		t.Errorf("generated_images = %v, want 1 entry", stored.GeneratedImages)
	}
	if len(stored.GeneratedCaptions) != 1 {
		t.Fatalf("generated_captions = %d entries, want 1", len(stored.GeneratedCaptions))
	}
	if !strings.Contains(stored.GeneratedCaptions[0].CaptionEn, "Nile Coffee") {
		t.Errorf("caption = %q", stored.GeneratedCaptions[0].CaptionEn)
	}
}

func TestGenerateContentAllVariationsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 500, "msg": "backend unavailable"}`)
	}))
	defer srv.Close()

	db := testDB(t)
	project := seedProject(t, db)
	svc := lifecycleService(t, db, srv.URL, "test-key", "")

	result, err := svc.GenerateContent(&models.GenerateContentRequest{ProjectID: project.ID})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if result.Success || result.VariationsCount != 0 {
		t.Errorf("result = %+v, want zero successes", result)
	}

	stored := reloadProject(t, db, project.ID)
	if stored.Status != models.StatusFailed {
		t.Errorf("status = %q, want failed", stored.Status)
	}
	if len(stored.GeneratedImages) != 0 {
		t.Errorf("generated_images = %v, want none", stored.GeneratedImages)
	}
}

func TestGenerateContentZeroVariations(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	// No server: zero variations never reach the generation API.
	svc := lifecycleService(t, db, "http://127.0.0.1:1", "test-key", "")

	result, err := svc.GenerateContent(&models.GenerateContentRequest{
		ProjectID:      project.ID,
		VariationCount: intPointer(0),
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if result.Success {
		t.Error("result.Success = true, want false for zero variations")
	}

	if got := reloadProject(t, db, project.ID).Status; got != models.StatusFailed {
		t.Errorf("status = %q, want failed", got)
	}
}

func TestGenerateContentMissingKey(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	svc := lifecycleService(t, db, "http://127.0.0.1:1", "", "")

	_, err := svc.GenerateContent(&models.GenerateContentRequest{ProjectID: project.ID})
	if !errors.Is(err, nanobanana.ErrAPIKeyNotConfigured) {
		t.Fatalf("GenerateContent() error = %v, want ErrAPIKeyNotConfigured", err)
	}

	if got := reloadProject(t, db, project.ID).Status; got != models.StatusFailed {
		t.Errorf("status = %q, want failed", got)
	}
}

func TestGenerateContentUnknownProject(t *testing.T) {
	db := testDB(t)
	svc := lifecycleService(t, db, "http://127.0.0.1:1", "test-key", "")

	_, err := svc.GenerateContent(&models.GenerateContentRequest{ProjectID: "missing"})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("GenerateContent() error = %v, want ErrProjectNotFound", err)
	}
}

func TestGenerateVideoDisabled(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	svc := lifecycleService(t, db, "http://127.0.0.1:1", "test-key", "video-key")

	err := svc.GenerateVideo(&models.GenerateVideoRequest{ProjectID: project.ID})
	if !errors.Is(err, ErrVideoDisabled) {
		t.Fatalf("GenerateVideo() error = %v, want ErrVideoDisabled", err)
	}

	if got := reloadProject(t, db, project.ID).Status; got != models.StatusFailed {
		t.Errorf("status = %q, want failed", got)
	}
}

func TestGenerateVideoMissingKey(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	svc := lifecycleService(t, db, "http://127.0.0.1:1", "test-key", "")

	err := svc.GenerateVideo(&models.GenerateVideoRequest{ProjectID: project.ID})
	if !errors.Is(err, ErrVideoKeyNotConfigured) {
		t.Fatalf("GenerateVideo() error = %v, want ErrVideoKeyNotConfigured", err)
	}

	if got := reloadProject(t, db, project.ID).Status; got != models.StatusFailed {
		t.Errorf("status = %q, want failed", got)
	}
}
