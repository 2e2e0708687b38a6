package models

import (
	"time"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// SellerCommissionRecord is a per-client, per-month obligation owed to a
// seller, generated from client payment state. The ID is derived as
// "{clientID}-{month}" so at most one record exists per (client, month).
//
// ClientName and SellerName are snapshots taken at generation time, not live
// joins; generation refreshes them when the client changes.
type SellerCommissionRecord struct {
	ID              string                        `gorm:"column:id;type:varchar(48);primary_key" json:"id"`
	UserID          string                        `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	ClientID        string                        `gorm:"column:client_id;type:uuid;not null;index" json:"client_id"`
	ClientName      string                        `gorm:"column:client_name;type:varchar(255);not null" json:"client_name"`
	SellerName      string                        `gorm:"column:seller_name;type:varchar(255);not null" json:"seller_name"`
	CommissionValue float64                       `gorm:"column:commission_value;type:numeric(12,2);not null" json:"commission_value"`
	PaymentStatus   types.CommissionPaymentStatus `gorm:"column:payment_status;type:varchar(16);not null" json:"payment_status"`
	Month           string                        `gorm:"column:month;type:varchar(7);not null;index" json:"month"`
	PaidDate        *time.Time                    `gorm:"column:paid_date;default:null" json:"paid_date"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

func (SellerCommissionRecord) TableName() string {
	return "seller_commissions"
}
