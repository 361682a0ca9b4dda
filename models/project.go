package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type Project struct {
	ID     string  `json:"id" gorm:"primaryKey;size:36"`
	UserID *string `json:"user_id" gorm:"index;size:64"`

	ContentType        string      `json:"content_type" gorm:"size:50"`
	CompanyName        string      `json:"company_name" gorm:"size:200"`
	CompanyDescription string      `json:"company_description" gorm:"type:text"`
	Strengths          StringArray `json:"strengths" gorm:"type:text"`
	Images             StringArray `json:"images" gorm:"type:text"`
	DesignGoal         string      `json:"design_goal" gorm:"type:text"`

	Platform                string `json:"platform" gorm:"default:'post_square';size:50"`
	PsychologicalStrategyID string `json:"psychological_strategy_id" gorm:"size:50"`

	ScrapedData JSON      `json:"scraped_data" gorm:"type:jsonb"`
	BrandColors StringMap `json:"brand_colors" gorm:"type:jsonb"`
	Language    string    `json:"language" gorm:"default:'ar';size:10"`

	// Generated assets only ever grow; they are removed only when the
	// project itself is deleted.
	GeneratedImages   StringArray `json:"generated_images" gorm:"type:text"`
	GeneratedVideos   StringArray `json:"generated_videos" gorm:"type:text"`
	GeneratedCaptions CaptionList `json:"generated_captions" gorm:"type:jsonb"`

	Status    string    `json:"status" gorm:"default:'draft';size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project lifecycle states.
const (
	StatusDraft           = "draft"
	StatusGenerating      = "generating"
	StatusGeneratingVideo = "generating_video"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
)

type ProjectCreateRequest struct {
	ContentType             string            `json:"content_type" binding:"required,max=50"`
	CompanyName             string            `json:"company_name" binding:"required,max=200"`
	CompanyDescription      string            `json:"company_description" binding:"required"`
	Strengths               []string          `json:"strengths" binding:"required"`
	Images                  []string          `json:"images"`
	DesignGoal              string            `json:"design_goal" binding:"required"`
	Platform                string            `json:"platform" binding:"required,max=50"`
	PsychologicalStrategyID string            `json:"psychological_strategy_id" binding:"required,max=50"`
	ScrapedData             map[string]any    `json:"scraped_data"`
	BrandColors             map[string]string `json:"brand_colors"`
	Language                string            `json:"language"`
}

type GenerateContentRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	// Absent means 3; an explicit 0 requests zero variations.
	VariationCount     *int   `json:"variation_count"`
	CustomInstructions string `json:"custom_instructions"`
}

type GenerateVideoRequest struct {
	ProjectID          string `json:"project_id" binding:"required"`
	Duration           int    `json:"duration"`
	VideoSize          string `json:"video_size"`
	CustomInstructions string `json:"custom_instructions"`
}

// Caption is one generated social-media caption set.
type Caption struct {
	CaptionAr string   `json:"caption_ar"`
	CaptionEn string   `json:"caption_en"`
	Hashtags  []string `json:"hashtags"`
}

type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return nil
}

type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return nil
}

type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return nil
}

type CaptionList []Caption

func (c CaptionList) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *CaptionList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return nil
}
