package access

import (
	"time"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// DefaultTrialDays is the free trial window granted from registration.
const DefaultTrialDays = 7

// activeDaysLeftSentinel is reported while a paid subscription is active;
// the gate never expires in that state.
const activeDaysLeftSentinel = 999

// Compute derives the trial/access state for a user. It is a pure function:
// callers re-invoke it whenever elapsed time or subscription state may have
// changed.
//
// DaysLeft is clamped to [0, trialDays], so a registration timestamp in the
// future (clock skew) can never report more than a full trial.
func Compute(now time.Time, registeredAt *time.Time, sub *models.Subscription, trialDays int) types.TrialInfo {
	if trialDays <= 0 {
		trialDays = DefaultTrialDays
	}

	if sub.Active() {
		return types.TrialInfo{DaysLeft: activeDaysLeftSentinel, IsExpired: false, HasFullAccess: true}
	}

	if registeredAt == nil || registeredAt.IsZero() {
		return types.TrialInfo{DaysLeft: 0, IsExpired: true, HasFullAccess: false}
	}

	daysSinceRegistration := int(now.Sub(*registeredAt).Hours() / 24)
	daysLeft := trialDays - daysSinceRegistration
	if daysLeft < 0 {
		daysLeft = 0
	}
	if daysLeft > trialDays {
		daysLeft = trialDays
	}

	expired := daysLeft == 0
	return types.TrialInfo{DaysLeft: daysLeft, IsExpired: expired, HasFullAccess: !expired}
}

// CheckSubscription derives the paid-subscription view: access is granted by
// an active subscription, or by a trialing one with trial time remaining.
// The plan is resolved through the explicit price table in config.
func CheckSubscription(now time.Time, sub *models.Subscription, planByID func(types.PlanID) *types.Plan) types.SubscriptionCheck {
	if sub == nil {
		return types.SubscriptionCheck{}
	}

	check := types.SubscriptionCheck{
		IsTrialing:  sub.Status == types.SubscriptionStatusTrialing,
		IsActive:    sub.Status == types.SubscriptionStatusActive,
		IsPastDue:   sub.Status == types.SubscriptionStatusPastDue,
		TrialEndsAt: sub.TrialEndsAt,
	}

	if sub.TrialEndsAt != nil {
		// ceil of the remaining fraction, matching the client-side countdown
		remaining := sub.TrialEndsAt.Sub(now)
		days := int(remaining.Hours() / 24)
		if remaining > time.Duration(days)*24*time.Hour {
			days++
		}
		check.DaysLeftInTrial = &days
	}

	check.HasAccess = check.IsActive ||
		(check.IsTrialing && check.DaysLeftInTrial != nil && *check.DaysLeftInTrial > 0)

	if planByID != nil {
		check.CurrentPlan = planByID(sub.PlanID)
	}
	return check
}
