package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCompute_TrialWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		registeredAt *time.Time
		sub          *models.Subscription
		wantDaysLeft int
		wantAccess   bool
	}{
		{
			name:         "registered just now",
			registeredAt: timePtr(now),
			wantDaysLeft: 7,
			wantAccess:   true,
		},
		{
			name:         "three days in",
			registeredAt: timePtr(now.Add(-3 * 24 * time.Hour)),
			wantDaysLeft: 4,
			wantAccess:   true,
		},
		{
			name:         "last day of trial",
			registeredAt: timePtr(now.Add(-6*24*time.Hour - 23*time.Hour)),
			wantDaysLeft: 1,
			wantAccess:   true,
		},
		{
			name:         "exactly seven days",
			registeredAt: timePtr(now.Add(-7 * 24 * time.Hour)),
			wantDaysLeft: 0,
			wantAccess:   false,
		},
		{
			name:         "long expired",
			registeredAt: timePtr(now.Add(-30 * 24 * time.Hour)),
			wantDaysLeft: 0,
			wantAccess:   false,
		},
		{
			name:         "no registration timestamp",
			registeredAt: nil,
			wantDaysLeft: 0,
			wantAccess:   false,
		},
		{
			name:         "registration in the future clamps to a full trial",
			registeredAt: timePtr(now.Add(5 * 24 * time.Hour)),
			wantDaysLeft: 7,
			wantAccess:   true,
		},
		{
			name:         "active subscription overrides expired trial",
			registeredAt: timePtr(now.Add(-30 * 24 * time.Hour)),
			sub:          &models.Subscription{Status: types.SubscriptionStatusActive},
			wantDaysLeft: 999,
			wantAccess:   true,
		},
		{
			name:         "active subscription without registration timestamp",
			registeredAt: nil,
			sub:          &models.Subscription{Status: types.SubscriptionStatusActive},
			wantDaysLeft: 999,
			wantAccess:   true,
		},
		{
			name:         "canceled subscription falls back to trial math",
			registeredAt: timePtr(now.Add(-30 * 24 * time.Hour)),
			sub:          &models.Subscription{Status: types.SubscriptionStatusCanceled},
			wantDaysLeft: 0,
			wantAccess:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(now, tt.registeredAt, tt.sub, 7)
			assert.Equal(t, tt.wantDaysLeft, got.DaysLeft)
			assert.Equal(t, tt.wantAccess, got.HasFullAccess)
			assert.Equal(t, !tt.wantAccess, got.IsExpired)
		})
	}
}

func TestCompute_DaysLeftFormula(t *testing.T) {
	// daysLeft = trialDays - floor((now - registeredAt) / 1 day)
	registered := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for elapsed := 0; elapsed < 10; elapsed++ {
		now := registered.Add(time.Duration(elapsed)*24*time.Hour + time.Hour)
		got := Compute(now, &registered, nil, 7)
		want := 7 - elapsed
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, got.DaysLeft, "elapsed=%d", elapsed)
	}
}

func TestCheckSubscription(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	plans := map[types.PlanID]*types.Plan{
		types.PlanPro: {ID: types.PlanPro, Name: "Pro", PriceID: "price_pro"},
	}
	lookup := func(id types.PlanID) *types.Plan { return plans[id] }

	t.Run("active has access", func(t *testing.T) {
		check := CheckSubscription(now, &models.Subscription{
			Status: types.SubscriptionStatusActive,
			PlanID: types.PlanPro,
		}, lookup)
		assert.True(t, check.HasAccess)
		assert.True(t, check.IsActive)
		require.NotNil(t, check.CurrentPlan)
		assert.Equal(t, types.PlanPro, check.CurrentPlan.ID)
	})

	t.Run("trialing with time left has access", func(t *testing.T) {
		ends := now.Add(3 * 24 * time.Hour)
		check := CheckSubscription(now, &models.Subscription{
			Status:      types.SubscriptionStatusTrialing,
			PlanID:      types.PlanPro,
			TrialEndsAt: &ends,
		}, lookup)
		assert.True(t, check.HasAccess)
		require.NotNil(t, check.DaysLeftInTrial)
		assert.Equal(t, 3, *check.DaysLeftInTrial)
	})

	t.Run("trialing past trial end has no access", func(t *testing.T) {
		ends := now.Add(-24 * time.Hour)
		check := CheckSubscription(now, &models.Subscription{
			Status:      types.SubscriptionStatusTrialing,
			TrialEndsAt: &ends,
		}, lookup)
		assert.False(t, check.HasAccess)
	})

	t.Run("past due has no access", func(t *testing.T) {
		check := CheckSubscription(now, &models.Subscription{
			Status: types.SubscriptionStatusPastDue,
		}, lookup)
		assert.False(t, check.HasAccess)
		assert.True(t, check.IsPastDue)
	})
}
