package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neuroad-server/config"
	"neuroad-server/models"
	"neuroad-server/pkg/database"
	"neuroad-server/pkg/logger"
)

// Demo mode: a single anonymous user, no external identity provider.
const (
	demoUserID    = "demo_user"
	demoUserEmail = "demo@neuroad.app"
	demoUserName  = "Demo User"
)

var ErrSessionNotFound = errors.New("session not found or expired")

type SessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionService() *SessionService {
	return &SessionService{
		db:  database.GetDB(),
		ttl: config.AppConfig.Session.TTL,
	}
}

// CreateDemoSession upserts the demo user, replaces any prior sessions for
// it and issues a fresh opaque token.
func (s *SessionService) CreateDemoSession() (*models.User, *models.UserSession, error) {
	var user models.User
	err := s.db.First(&user, "user_id = ?", demoUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			UserID:    demoUserID,
			Email:     demoUserEmail,
			Name:      demoUserName,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.db.Create(&user).Error; err != nil {
			logger.Errorf("Failed to create demo user: %v", err)
			return nil, nil, errors.New("failed to create user")
		}
	} else if err != nil {
		logger.Errorf("Failed to look up demo user: %v", err)
		return nil, nil, errors.New("failed to look up user")
	}

	session := &models.UserSession{
		UserID:       user.UserID,
		SessionToken: newSessionToken(),
		ExpiresAt:    time.Now().UTC().Add(s.ttl),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.Where("user_id = ?", user.UserID).Delete(&models.UserSession{}).Error; err != nil {
		logger.Errorf("Failed to clear previous sessions: %v", err)
	}

	if err := s.db.Create(session).Error; err != nil {
		logger.Errorf("Failed to create session: %v", err)
		return nil, nil, errors.New("failed to create session")
	}

	logger.Infof("Session created for user %s", user.UserID)
	return &user, session, nil
}

// GetUserBySession resolves a session token to its user. The session must
// exist, be unexpired and reference an existing user.
func (s *SessionService) GetUserBySession(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.UserSession
	if err := s.db.First(&session, "session_token = ?", token).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	var user models.User
	if err := s.db.First(&user, "user_id = ?", session.UserID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	return &user, nil
}

// Logout removes a stored session. Unknown tokens are a no-op.
func (s *SessionService) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.db.Where("session_token = ?", token).Delete(&models.UserSession{}).Error; err != nil {
		logger.Errorf("Failed to delete session: %v", err)
		return errors.New("failed to delete session")
	}
	return nil
}

func newSessionToken() string {
	return fmt.Sprintf("demo_session_%s", strings.ReplaceAll(uuid.NewString(), "-", ""))
}
