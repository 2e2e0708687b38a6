package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
)

var ErrBadSignature = errors.New("webhook signature verification failed")

const (
	eventCheckoutCompleted  = "checkout.session.completed"
	eventSubscriptionUpdate = "customer.subscription.updated"
	eventSubscriptionDelete = "customer.subscription.deleted"
)

// ProcessWebhook verifies a raw webhook payload against the shared secret and
// applies the event. Unhandled event types are acknowledged and dropped.
func (s *Service) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.Stripe.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	log := logctx.FromCtx(ctx, s.log)
	switch string(event.Type) {
	case eventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to decode checkout session event: %w", err)
		}
		if sess.ClientReferenceID == "" {
			log.Warnw("checkout completed without client reference", "session_id", sess.ID)
			return nil
		}
		// Event payloads carry the subscription id only; fetch the expanded
		// session so the upsert sees price and period data.
		return s.ConfirmCheckout(ctx, sess.ID, sess.ClientReferenceID)

	case eventSubscriptionUpdate, eventSubscriptionDelete:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to decode subscription event: %w", err)
		}
		return s.mirrorSubscriptionChange(ctx, &sub)

	default:
		log.Debugw("ignoring webhook event", "type", event.Type, "event_id", event.ID)
		return nil
	}
}

// eventUpdates builds the column updates mirrored from a subscription event.
// The plan column is only written when the price resolves through the plan
// table; an unconfigured price keeps the stored plan and reports the
// resolution error so the caller can log it.
func (s *Service) eventUpdates(sub *stripe.Subscription) (map[string]any, error) {
	updates := map[string]any{
		"status":               mapStatus(sub.Status),
		"trial_ends_at":        unixPtr(sub.TrialEnd),
		"current_period_start": unixPtr(sub.CurrentPeriodStart),
		"current_period_end":   unixPtr(sub.CurrentPeriodEnd),
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
	}
	planID, err := s.planIDFor(sub)
	if err != nil {
		return updates, err
	}
	updates["plan_id"] = planID
	return updates, nil
}

// mirrorSubscriptionChange applies a status change to the local row keyed by
// stripe_subscription_id. Events for subscriptions this instance never saw
// are dropped.
func (s *Service) mirrorSubscriptionChange(ctx context.Context, sub *stripe.Subscription) error {
	var row models.Subscription
	err := s.db.WithContext(ctx).Where("stripe_subscription_id = ?", sub.ID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logctx.FromCtx(ctx, s.log).Warnw("subscription event for unknown subscription",
			"stripe_subscription_id", sub.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load subscription: %w", err)
	}

	updates, planErr := s.eventUpdates(sub)
	if planErr != nil {
		logctx.FromCtx(ctx, s.log).Warnw("subscription price not in plan table, keeping stored plan",
			"stripe_subscription_id", sub.ID, "error", planErr)
	}

	err = s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("id = ?", row.ID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to mirror subscription change: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("subscription mirrored",
		"user_id", row.UserID, "stripe_subscription_id", sub.ID, "status", sub.Status)
	return nil
}
