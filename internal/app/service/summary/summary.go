package summary

import (
	"github.com/samber/lo"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// FilterTotal selects the unfiltered, all-time aggregation mode.
const FilterTotal = "total"

// Summarize computes the derived financial summary over in-memory
// collections. Deterministic for identical inputs; empty collections yield an
// all-zero summary.
//
// In total mode revenue counts clients marked paid and commissions marked
// paid. In month-filtered mode revenue counts clients whose last payment
// month matches, and commissions are filtered by month only, regardless of
// their payment status. The commission-status asymmetry between the two modes
// is intentional observed behavior and must not be unified here.
func Summarize(clients []*models.Client, expenses []*models.AgencyExpense, commissions []*models.SellerCommissionRecord, monthFilter string) types.FinancialSummary {
	var out types.FinancialSummary

	byMonth := monthFilter != "" && monthFilter != FilterTotal

	for _, c := range clients {
		if byMonth {
			if c.LastPaymentMonth == nil || *c.LastPaymentMonth != monthFilter {
				continue
			}
			out.TotalRevenue += c.MonthlyValue
			out.TotalExtraExpenses += c.ExtraExpensesTotal()
			continue
		}
		if c.PaymentStatus == types.PaymentStatusPaid {
			out.TotalRevenue += c.MonthlyValue
		}
		// Extra expenses count regardless of the client's payment status.
		out.TotalExtraExpenses += c.ExtraExpensesTotal()
	}

	for _, r := range commissions {
		if byMonth {
			if r.Month == monthFilter {
				out.TotalCommissions += r.CommissionValue
			}
			continue
		}
		if r.PaymentStatus == types.CommissionStatusPaid {
			out.TotalCommissions += r.CommissionValue
		}
	}

	// Agency expenses carry no month dimension; always unfiltered.
	out.TotalAgencyExpenses = lo.SumBy(expenses, func(e *models.AgencyExpense) float64 { return e.Value })

	out.TotalExpenses = out.TotalCommissions + out.TotalExtraExpenses + out.TotalAgencyExpenses
	out.NetProfit = out.TotalRevenue - out.TotalExpenses
	return out
}

// Forecast computes the current-month receivables projection: the full book
// of monthly retainers, what has been received this month, and the remainder.
func Forecast(clients []*models.Client, currentMonth string) types.MonthForecast {
	var f types.MonthForecast
	f.TotalExpected = lo.SumBy(clients, func(c *models.Client) float64 { return c.MonthlyValue })
	f.PaidThisMonth = lo.SumBy(clients, func(c *models.Client) float64 {
		if c.LastPaymentMonth != nil && *c.LastPaymentMonth == currentMonth {
			return c.MonthlyValue
		}
		return 0
	})
	f.ToReceive = f.TotalExpected - f.PaidThisMonth
	return f
}
