package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

func planTable() *Config {
	return &Config{Plans: []*types.Plan{
		{ID: types.PlanStarter, Name: "Starter", PriceID: "price_starter"},
		{ID: types.PlanPro, Name: "Pro", PriceID: "price_pro"},
		{ID: types.PlanPremium, Name: "Premium", PriceID: "price_premium"},
	}}
}

func TestGetPlanByID(t *testing.T) {
	cfg := planTable()

	p := cfg.GetPlanByID(types.PlanPro)
	require.NotNil(t, p)
	assert.Equal(t, "price_pro", p.PriceID)

	assert.Nil(t, cfg.GetPlanByID("enterprise"))
}

func TestGetPlanByPriceID(t *testing.T) {
	cfg := planTable()

	p, err := cfg.GetPlanByPriceID("price_premium")
	require.NoError(t, err)
	assert.Equal(t, types.PlanPremium, p.ID)

	// Unknown price ids are an error, never a fallback tier.
	_, err = cfg.GetPlanByPriceID("price_7k_mystery")
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, 8888, cfg.Server.Port)
	assert.Equal(t, 7, cfg.TrialDays)
	assert.NotEmpty(t, cfg.Auth.TokenTTL)
}
