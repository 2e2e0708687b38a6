package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// State bundles everything the client needs to render gating UI.
type State struct {
	TrialInfo         types.TrialInfo          `json:"trial_info"`
	SubscriptionCheck *types.SubscriptionCheck `json:"subscription_check"`
	Subscription      *models.Subscription     `json:"subscription"`
}

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

// Check loads the user and their subscription (if any) and computes the
// current access state.
func (s *Service) Check(ctx context.Context, userID string) (*State, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	registeredAt := user.CreatedAt
	state := &State{
		TrialInfo:    Compute(now, &registeredAt, sub, s.cfg.TrialDays),
		Subscription: sub,
	}
	if sub != nil {
		check := CheckSubscription(now, sub, s.cfg.GetPlanByID)
		state.SubscriptionCheck = &check
	}
	return state, nil
}

// Subscription returns the user's subscription row, or nil when none exists.
func (s *Service) Subscription(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	return &sub, nil
}
