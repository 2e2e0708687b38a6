package types

import "time"

type PlanID string

const (
	PlanStarter PlanID = "starter"
	PlanPro     PlanID = "pro"
	PlanPremium PlanID = "premium"
)

type SubscriptionStatus string

const (
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusPastDue    SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
)

// Plan describes a purchasable tier. PriceID is the payment processor's
// price identifier; the config carries the exhaustive PriceID -> Plan table.
type Plan struct {
	ID         PlanID   `json:"id" mapstructure:"id"`
	Name       string   `json:"name" mapstructure:"name"`
	Price      float64  `json:"price" mapstructure:"price"`
	PriceID    string   `json:"price_id" mapstructure:"price_id"`
	MaxClients int      `json:"max_clients" mapstructure:"max_clients"` // -1 = unlimited
	Features   []string `json:"features" mapstructure:"features"`
}

// TrialInfo is the derived access state for a user. Recomputed on demand,
// never a source of truth.
type TrialInfo struct {
	DaysLeft      int  `json:"days_left"`
	IsExpired     bool `json:"is_expired"`
	HasFullAccess bool `json:"has_full_access"`
}

// SubscriptionCheck is the detailed paid-subscription view returned to the
// client alongside TrialInfo.
type SubscriptionCheck struct {
	HasAccess       bool       `json:"has_access"`
	IsTrialing      bool       `json:"is_trialing"`
	IsActive        bool       `json:"is_active"`
	IsPastDue       bool       `json:"is_past_due"`
	DaysLeftInTrial *int       `json:"days_left_in_trial"`
	CurrentPlan     *Plan      `json:"current_plan"`
	TrialEndsAt     *time.Time `json:"trial_ends_at,omitempty"`
}
