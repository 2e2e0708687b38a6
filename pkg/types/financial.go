package types

// PaymentStatus is the manually set billing state of a client.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue:
		return true
	}
	return false
}

// CommissionPaymentStatus has no overdue state; a commission is either
// settled with the seller or it is not.
type CommissionPaymentStatus string

const (
	CommissionStatusPaid    CommissionPaymentStatus = "paid"
	CommissionStatusPending CommissionPaymentStatus = "pending"
)

func (s CommissionPaymentStatus) Valid() bool {
	return s == CommissionStatusPaid || s == CommissionStatusPending
}

// SellerNameNone is the seller_name snapshot written when a client has no
// seller assigned.
const SellerNameNone = "Sem vendedor"

// ExtraExpense is a per-client cost embedded in the client row; it has no
// independent lifecycle.
type ExtraExpense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// FinancialSummary is derived on demand from the client, agency expense and
// commission collections. It is never persisted.
type FinancialSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalExpenses       float64 `json:"total_expenses"`
	TotalCommissions    float64 `json:"total_commissions"`
	TotalExtraExpenses  float64 `json:"total_extra_expenses"`
	TotalAgencyExpenses float64 `json:"total_agency_expenses"`
	NetProfit           float64 `json:"net_profit"`
}

// MonthForecast is the current-month receivables projection shown on the
// analytics dashboard.
type MonthForecast struct {
	TotalExpected float64 `json:"total_expected"`
	PaidThisMonth float64 `json:"paid_this_month"`
	ToReceive     float64 `json:"to_receive"`
}
