package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

func client(id string, monthlyValue float64, status types.PaymentStatus, extras ...types.ExtraExpense) *models.Client {
	return &models.Client{
		ID:            id,
		MonthlyValue:  monthlyValue,
		PaymentStatus: status,
		ExtraExpenses: datatypes.NewJSONType(extras),
	}
}

func TestSummarize_TotalMode(t *testing.T) {
	clients := []*models.Client{
		client("c1", 500, types.PaymentStatusPaid),
		client("c2", 300, types.PaymentStatusPending),
	}

	got := Summarize(clients, nil, nil, "total")
	assert.Equal(t, 500.0, got.TotalRevenue)
	assert.Equal(t, 0.0, got.TotalExpenses)
	assert.Equal(t, 500.0, got.NetProfit)
}

func TestSummarize_EmptyInput(t *testing.T) {
	got := Summarize(nil, nil, nil, "total")
	assert.Equal(t, types.FinancialSummary{}, got)
}

func TestSummarize_ExtraExpensesIgnorePaymentStatus(t *testing.T) {
	clients := []*models.Client{
		client("c1", 500, types.PaymentStatusPaid, types.ExtraExpense{ID: "e1", Value: 50}),
		client("c2", 300, types.PaymentStatusOverdue, types.ExtraExpense{ID: "e2", Value: 30}),
	}

	got := Summarize(clients, nil, nil, "")
	assert.Equal(t, 500.0, got.TotalRevenue)
	assert.Equal(t, 80.0, got.TotalExtraExpenses)
	assert.Equal(t, 80.0, got.TotalExpenses)
	assert.Equal(t, 420.0, got.NetProfit)
}

func TestSummarize_CommissionStatusFilter(t *testing.T) {
	commissions := []*models.SellerCommissionRecord{
		{ID: "c1-2026-09", CommissionValue: 100, PaymentStatus: types.CommissionStatusPaid, Month: "2026-09"},
		{ID: "c2-2026-09", CommissionValue: 60, PaymentStatus: types.CommissionStatusPending, Month: "2026-09"},
		{ID: "c1-2026-08", CommissionValue: 90, PaymentStatus: types.CommissionStatusPaid, Month: "2026-08"},
	}

	// Total mode counts paid commissions only.
	total := Summarize(nil, nil, commissions, "total")
	assert.Equal(t, 190.0, total.TotalCommissions)

	// Month mode counts every commission of the month, paid or not.
	month := Summarize(nil, nil, commissions, "2026-09")
	assert.Equal(t, 160.0, month.TotalCommissions)
}

func TestSummarize_MonthFilteredRevenue(t *testing.T) {
	m := "2026-09"
	other := "2026-08"
	clients := []*models.Client{
		{ID: "c1", MonthlyValue: 500, PaymentStatus: types.PaymentStatusPaid, LastPaymentMonth: &m,
			ExtraExpenses: datatypes.NewJSONType([]types.ExtraExpense{{ID: "e1", Value: 25}})},
		{ID: "c2", MonthlyValue: 300, PaymentStatus: types.PaymentStatusPaid, LastPaymentMonth: &other,
			ExtraExpenses: datatypes.NewJSONType([]types.ExtraExpense{{ID: "e2", Value: 10}})},
		{ID: "c3", MonthlyValue: 200, PaymentStatus: types.PaymentStatusPending},
	}
	expenses := []*models.AgencyExpense{{ID: "a1", Value: 40}}

	got := Summarize(clients, expenses, nil, m)
	assert.Equal(t, 500.0, got.TotalRevenue)
	// Only the matching client's extra expenses count in month mode.
	assert.Equal(t, 25.0, got.TotalExtraExpenses)
	// Agency expenses have no month dimension and always count.
	assert.Equal(t, 40.0, got.TotalAgencyExpenses)
	assert.Equal(t, 500.0-65.0, got.NetProfit)
}

func TestSummarize_Additivity(t *testing.T) {
	setA := []*models.Client{
		client("a1", 500, types.PaymentStatusPaid, types.ExtraExpense{ID: "e1", Value: 10}),
		client("a2", 250, types.PaymentStatusPending),
	}
	setB := []*models.Client{
		client("b1", 900, types.PaymentStatusPaid),
	}
	expA := []*models.AgencyExpense{{ID: "x1", Value: 30}}
	comB := []*models.SellerCommissionRecord{
		{ID: "b1-2026-09", CommissionValue: 90, PaymentStatus: types.CommissionStatusPaid, Month: "2026-09"},
	}

	whole := Summarize(append(append([]*models.Client{}, setA...), setB...), expA, comB, "total")
	partA := Summarize(setA, expA, nil, "total")
	partB := Summarize(setB, nil, comB, "total")

	assert.Equal(t, partA.TotalRevenue+partB.TotalRevenue, whole.TotalRevenue)
	assert.Equal(t, partA.TotalCommissions+partB.TotalCommissions, whole.TotalCommissions)
	assert.Equal(t, partA.TotalExtraExpenses+partB.TotalExtraExpenses, whole.TotalExtraExpenses)
	assert.Equal(t, partA.TotalAgencyExpenses+partB.TotalAgencyExpenses, whole.TotalAgencyExpenses)
	assert.Equal(t, partA.TotalExpenses+partB.TotalExpenses, whole.TotalExpenses)
	assert.Equal(t, partA.NetProfit+partB.NetProfit, whole.NetProfit)
}

func TestForecast(t *testing.T) {
	m := "2026-09"
	old := "2026-07"
	clients := []*models.Client{
		{ID: "c1", MonthlyValue: 1000, LastPaymentMonth: &m},
		{ID: "c2", MonthlyValue: 400, LastPaymentMonth: &old},
		{ID: "c3", MonthlyValue: 600},
	}

	got := Forecast(clients, m)
	assert.Equal(t, 2000.0, got.TotalExpected)
	assert.Equal(t, 1000.0, got.PaidThisMonth)
	assert.Equal(t, 1000.0, got.ToReceive)
}
