package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// Client is a billed customer of the agency.
//
// PaymentStatus is set manually by the user; DeriveStatus computes the
// date-based billing view. The two can disagree and both are surfaced.
type Client struct {
	ID           string              `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID       string              `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name         string              `gorm:"column:name;type:varchar(255);not null" json:"name"`
	MonthlyValue float64             `gorm:"column:monthly_value;type:numeric(12,2);not null" json:"monthly_value"`
	PaymentDate  int                 `gorm:"column:payment_date;not null" json:"payment_date"` // day of month, 1-31
	PaymentStatus types.PaymentStatus `gorm:"column:payment_status;type:varchar(16);not null" json:"payment_status"`
	SellerName   string              `gorm:"column:seller_name;type:varchar(255)" json:"seller_name"` // "" = no seller
	// SellerCommission is a percentage of MonthlyValue, 0-100.
	SellerCommission float64                                `gorm:"column:seller_commission;type:numeric(5,2);not null" json:"seller_commission"`
	ExtraExpenses    datatypes.JSONType[[]types.ExtraExpense] `gorm:"column:extra_expenses;type:jsonb;default:'[]'" json:"extra_expenses"`
	// ContractStartDate ("YYYY-MM-DD") and FirstPaymentMonth ("YYYY-MM")
	// suppress billing before the contract actually starts.
	ContractStartDate *string `gorm:"column:contract_start_date;type:varchar(10);default:null" json:"contract_start_date"`
	FirstPaymentMonth *string `gorm:"column:first_payment_month;type:varchar(7);default:null" json:"first_payment_month"`
	// LastPaymentMonth is the most recent month key a payment was recorded for.
	LastPaymentMonth *string   `gorm:"column:last_payment_month;type:varchar(7);default:null" json:"last_payment_month"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// CommissionValue returns the seller commission owed for one month of this
// client's retainer.
func (c *Client) CommissionValue() float64 {
	return c.MonthlyValue * c.SellerCommission / 100
}

// SellerNameOrDefault returns the seller snapshot value for commission
// records.
func (c *Client) SellerNameOrDefault() string {
	if c.SellerName == "" {
		return types.SellerNameNone
	}
	return c.SellerName
}

// ExtraExpensesTotal sums the embedded extra expenses.
func (c *Client) ExtraExpensesTotal() float64 {
	var sum float64
	for _, e := range c.ExtraExpenses.Data() {
		sum += e.Value
	}
	return sum
}

// DeriveStatus computes the date-based billing status of the client for
// "today". It returns nil when the client is not billable yet (today's month
// precedes FirstPaymentMonth); such clients are excluded from billing lists.
// It never mutates PaymentStatus.
func (c *Client) DeriveStatus(today time.Time) *types.PaymentStatus {
	currentMonth := types.MonthKeyOf(today)

	if c.FirstPaymentMonth != nil && *c.FirstPaymentMonth != "" {
		if first, err := types.ParseMonthKey(*c.FirstPaymentMonth); err == nil {
			monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
			if monthStart.Before(first) {
				return nil
			}
		}
	}

	var status types.PaymentStatus
	switch {
	case c.LastPaymentMonth != nil && *c.LastPaymentMonth == currentMonth:
		status = types.PaymentStatusPaid
	case today.Day() > c.PaymentDate:
		status = types.PaymentStatusOverdue
	default:
		status = types.PaymentStatusPending
	}
	return &status
}
