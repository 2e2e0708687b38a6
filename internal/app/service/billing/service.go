package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v78"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/platform/stripeapi"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

var (
	ErrUnknownPrice   = errors.New("unknown price id")
	ErrNoSubscription = errors.New("checkout session has no subscription")
)

type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	stripe stripeapi.Client
	log    *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, stripe stripeapi.Client, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, stripe: stripe, log: log}
}

// CheckoutResult is the raw contract of the create-checkout endpoint.
type CheckoutResult struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

// CreateCheckout opens a subscription checkout session for a configured plan.
// The price id must resolve through the plan table.
func (s *Service) CreateCheckout(ctx context.Context, priceID, userID, userEmail string) (*CheckoutResult, error) {
	if _, err := s.cfg.GetPlanByPriceID(priceID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownPrice, err)
	}

	sess, err := s.stripe.CreateCheckoutSession(ctx, &stripeapi.CheckoutParams{
		PriceID:    priceID,
		UserID:     userID,
		UserEmail:  userEmail,
		SuccessURL: s.cfg.Stripe.SuccessURL,
		CancelURL:  s.cfg.Stripe.CancelURL,
		TrialDays:  s.cfg.TrialDays,
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{URL: sess.URL, SessionID: sess.ID}, nil
}

// CreatePortal opens a billing portal session for an existing customer.
func (s *Service) CreatePortal(ctx context.Context, customerID string) (string, error) {
	sess, err := s.stripe.CreatePortalSession(ctx, customerID, s.cfg.Stripe.PortalReturnURL)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// ConfirmCheckout fetches a completed checkout session and mirrors its
// subscription into the local row for the user. Idempotent: replays upsert
// the same state.
func (s *Service) ConfirmCheckout(ctx context.Context, sessionID, userID string) error {
	sess, err := s.stripe.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Subscription == nil {
		return ErrNoSubscription
	}

	var customerID *string
	if sess.Customer != nil {
		customerID = &sess.Customer.ID
	}
	if err := s.upsertSubscription(ctx, userID, sess.Subscription, customerID); err != nil {
		return err
	}

	logctx.FromCtx(ctx, s.log).Infow("checkout confirmed",
		"user_id", userID, "session_id", sessionID)
	return nil
}

// GetLocalSubscription returns the mirrored subscription row, or nil when the
// user never subscribed.
func (s *Service) GetLocalSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	return &sub, nil
}

// upsertSubscription writes the local mirror of a Stripe subscription, keyed
// by user_id.
func (s *Service) upsertSubscription(ctx context.Context, userID string, sub *stripe.Subscription, customerID *string) error {
	planID, err := s.planIDFor(sub)
	if err != nil {
		return err
	}

	row := &models.Subscription{
		ID:                   tool.GenerateUUIDV7(),
		UserID:               userID,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: &sub.ID,
		PlanID:               planID,
		Status:               mapStatus(sub.Status),
		TrialEndsAt:          unixPtr(sub.TrialEnd),
		CurrentPeriodStart:   unixPtr(sub.CurrentPeriodStart),
		CurrentPeriodEnd:     unixPtr(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	}
	if customerID == nil && sub.Customer != nil {
		row.StripeCustomerID = &sub.Customer.ID
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stripe_customer_id", "stripe_subscription_id", "plan_id", "status",
			"trial_ends_at", "current_period_start", "current_period_end",
			"cancel_at_period_end", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// planIDFor resolves the subscription's price through the configured plan
// table. Unknown prices fail loudly instead of guessing a tier.
func (s *Service) planIDFor(sub *stripe.Subscription) (types.PlanID, error) {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return "", fmt.Errorf("subscription %s has no price item", sub.ID)
	}
	plan, err := s.cfg.GetPlanByPriceID(sub.Items.Data[0].Price.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownPrice, err)
	}
	return plan.ID, nil
}

func mapStatus(status stripe.SubscriptionStatus) types.SubscriptionStatus {
	switch status {
	case stripe.SubscriptionStatusTrialing:
		return types.SubscriptionStatusTrialing
	case stripe.SubscriptionStatusActive:
		return types.SubscriptionStatusActive
	case stripe.SubscriptionStatusPastDue:
		return types.SubscriptionStatusPastDue
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusUnpaid, stripe.SubscriptionStatusIncompleteExpired:
		return types.SubscriptionStatusCanceled
	default:
		return types.SubscriptionStatusIncomplete
	}
}

func unixPtr(ts int64) *time.Time {
	if ts == 0 {
		return nil
	}
	t := time.Unix(ts, 0).UTC()
	return &t
}
