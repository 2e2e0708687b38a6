package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
)

// Typed error kinds let the HTTP layer map auth failures without inspecting
// message text.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid auth input")
)

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (in *RegisterInput) validate() error {
	email := strings.TrimSpace(in.Email)
	switch {
	case email == "" || len(email) > 254:
		return fmt.Errorf("%w: email must be 1-254 characters", ErrInvalidInput)
	case !strings.Contains(email, "@") || !strings.Contains(email, "."):
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	case len(in.Name) < 2 || len(in.Name) > 255:
		return fmt.Errorf("%w: name must be 2-255 characters", ErrInvalidInput)
	case len(in.Password) < 6:
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	return nil
}

// Register creates an account with a bcrypt-hashed password. When email
// confirmation is not required the account is confirmed immediately.
func (s *Service) Register(ctx context.Context, in *RegisterInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           tool.GenerateUUIDV7(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
	}
	if !s.cfg.Auth.RequireEmailConfirmation {
		user.EmailConfirmedAt = lo.ToPtr(time.Now())
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a token. An unconfirmed email is a
// distinct failure so the client can offer to resend the confirmation.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if s.cfg.Auth.RequireEmailConfirmation && !user.EmailConfirmed() {
		return nil, "", ErrEmailNotConfirmed
	}

	token, err := s.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ConfirmEmail marks an account confirmed. Safe to call twice.
func (s *Service) ConfirmEmail(ctx context.Context, userID string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND email_confirmed_at IS NULL", userID).
		Update("email_confirmed_at", time.Now())
	if res.Error != nil {
		return fmt.Errorf("failed to confirm email: %w", res.Error)
	}
	return nil
}

// GetUser loads a user by id.
func (s *Service) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}
