package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

const testMonth = "2026-09"

func paidClient(id, seller string, monthlyValue, commissionPct float64) *models.Client {
	return &models.Client{
		ID:               id,
		UserID:           "u1",
		Name:             "Client " + id,
		SellerName:       seller,
		MonthlyValue:     monthlyValue,
		SellerCommission: commissionPct,
		PaymentStatus:    types.PaymentStatusPaid,
	}
}

func TestPlanForClient_PaidPendingRoundTrip(t *testing.T) {
	c := paidClient("c1", "Alice", 1000, 10)

	record := PlanForClient(c, testMonth)
	require.NotNil(t, record)
	assert.Equal(t, "c1-2026-09", record.ID)
	assert.Equal(t, 100.0, record.CommissionValue)
	assert.Equal(t, types.CommissionStatusPending, record.PaymentStatus)

	// Flipping the client back to pending targets the same keyed record for
	// removal, so a paid-then-pending cycle leaves nothing behind.
	c.PaymentStatus = types.PaymentStatusPending
	assert.Nil(t, PlanForClient(c, testMonth))

	c.PaymentStatus = types.PaymentStatusOverdue
	assert.Nil(t, PlanForClient(c, testMonth))

	// Marking paid again recreates the identical key.
	c.PaymentStatus = types.PaymentStatusPaid
	again := PlanForClient(c, testMonth)
	require.NotNil(t, again)
	assert.Equal(t, record.ID, again.ID)
}

func TestPlanForMonth_InsertsForPaidClientsOnly(t *testing.T) {
	pending := paidClient("c2", "Bob", 800, 5)
	pending.PaymentStatus = types.PaymentStatusPending

	plan := PlanForMonth(testMonth, []*models.Client{
		paidClient("c1", "Alice", 1000, 10),
		pending,
	}, nil)

	require.Len(t, plan.ToInsert, 1)
	assert.Empty(t, plan.ToUpdate)

	r := plan.ToInsert[0]
	assert.Equal(t, "c1-2026-09", r.ID)
	assert.Equal(t, 100.0, r.CommissionValue)
	assert.Equal(t, "Alice", r.SellerName)
	assert.Equal(t, types.CommissionStatusPending, r.PaymentStatus)
	assert.Equal(t, testMonth, r.Month)
}

func TestPlanForMonth_Idempotent(t *testing.T) {
	clients := []*models.Client{
		paidClient("c1", "Alice", 1000, 10),
		paidClient("c2", "Bob", 2000, 7.5),
	}

	first := PlanForMonth(testMonth, clients, nil)
	require.Len(t, first.ToInsert, 2)

	second := PlanForMonth(testMonth, clients, first.ToInsert)
	assert.True(t, second.Empty())
}

func TestPlanForMonth_UpdatesStaleSnapshot(t *testing.T) {
	c := paidClient("c1", "Alice", 1000, 10)
	existing := []*models.SellerCommissionRecord{{
		ID:              "c1-2026-09",
		UserID:          "u1",
		ClientID:        "c1",
		ClientName:      "Old Name",
		SellerName:      "Alice",
		CommissionValue: 80,
		PaymentStatus:   types.CommissionStatusPaid,
		Month:           testMonth,
	}}

	plan := PlanForMonth(testMonth, []*models.Client{c}, existing)
	assert.Empty(t, plan.ToInsert)
	require.Len(t, plan.ToUpdate, 1)

	r := plan.ToUpdate[0]
	assert.Equal(t, 100.0, r.CommissionValue)
	assert.Equal(t, "Client c1", r.ClientName)
	// Payment status survives a snapshot refresh.
	assert.Equal(t, types.CommissionStatusPaid, r.PaymentStatus)
}

func TestPlanForMonth_SellerDefault(t *testing.T) {
	plan := PlanForMonth(testMonth, []*models.Client{paidClient("c1", "", 1000, 10)}, nil)
	require.Len(t, plan.ToInsert, 1)
	assert.Equal(t, types.SellerNameNone, plan.ToInsert[0].SellerName)
}

func TestPlanForMonth_IgnoresOtherMonths(t *testing.T) {
	c := paidClient("c1", "Alice", 1000, 10)
	existing := []*models.SellerCommissionRecord{{
		ID:              "c1-2026-08",
		ClientID:        "c1",
		ClientName:      c.Name,
		SellerName:      "Alice",
		CommissionValue: 100,
		Month:           "2026-08",
	}}

	plan := PlanForMonth(testMonth, []*models.Client{c}, existing)
	require.Len(t, plan.ToInsert, 1)
	assert.Equal(t, "c1-2026-09", plan.ToInsert[0].ID)
}
