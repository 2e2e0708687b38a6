package handlers

import (
	"time"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespSummary wraps the financial summary in the standard envelope.
type RespSummary struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    types.FinancialSummary   `json:"data"`
}

// SwaggerClient is a simplified view of models.Client for documentation purposes.
type SwaggerClient struct {
	ID                string               `json:"id"`
	UserID            string               `json:"user_id"`
	Name              string               `json:"name"`
	MonthlyValue      float64              `json:"monthly_value"`
	PaymentDate       int                  `json:"payment_date"`
	PaymentStatus     types.PaymentStatus  `json:"payment_status"`
	SellerName        string               `json:"seller_name"`
	SellerCommission  float64              `json:"seller_commission"`
	ExtraExpenses     []types.ExtraExpense `json:"extra_expenses"`
	ContractStartDate *string              `json:"contract_start_date"`
	FirstPaymentMonth *string              `json:"first_payment_month"`
	LastPaymentMonth  *string              `json:"last_payment_month"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// SwaggerCommission is a simplified view of models.SellerCommissionRecord for
// documentation purposes.
type SwaggerCommission struct {
	ID              string                        `json:"id"`
	UserID          string                        `json:"user_id"`
	ClientID        string                        `json:"client_id"`
	ClientName      string                        `json:"client_name"`
	SellerName      string                        `json:"seller_name"`
	CommissionValue float64                       `json:"commission_value"`
	PaymentStatus   types.CommissionPaymentStatus `json:"payment_status"`
	Month           string                        `json:"month"`
	PaidDate        *time.Time                    `json:"paid_date"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}
