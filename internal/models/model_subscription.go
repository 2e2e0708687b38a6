package models

import (
	"time"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// Subscription mirrors the payment processor's subscription state for a user.
// Rows are written by the billing service only (webhook events and checkout
// confirmation); the rest of the application treats it as read-only.
type Subscription struct {
	ID                   string                   `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID               string                   `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	StripeCustomerID     *string                  `gorm:"column:stripe_customer_id;type:varchar(64);default:null" json:"stripe_customer_id"`
	StripeSubscriptionID *string                  `gorm:"column:stripe_subscription_id;type:varchar(64);default:null;index" json:"stripe_subscription_id"`
	PlanID               types.PlanID             `gorm:"column:plan_id;type:varchar(16);not null" json:"plan_id"`
	Status               types.SubscriptionStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	TrialEndsAt          *time.Time               `gorm:"column:trial_ends_at;default:null" json:"trial_ends_at"`
	CurrentPeriodStart   *time.Time               `gorm:"column:current_period_start;default:null" json:"current_period_start"`
	CurrentPeriodEnd     *time.Time               `gorm:"column:current_period_end;default:null" json:"current_period_end"`
	CancelAtPeriodEnd    bool                     `gorm:"column:cancel_at_period_end;not null;default:false" json:"cancel_at_period_end"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// Active reports whether the subscription is paid and current.
func (s *Subscription) Active() bool {
	return s != nil && s.Status == types.SubscriptionStatusActive
}
