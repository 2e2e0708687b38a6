package models

import "time"

// DefaultExpenseCategory is applied when an expense is created without one.
const DefaultExpenseCategory = "Geral"

// AgencyExpense is a user-scoped operational cost, independent of any client.
type AgencyExpense struct {
	ID          string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Description string    `gorm:"column:description;type:varchar(255);not null" json:"description"`
	Value       float64   `gorm:"column:value;type:numeric(12,2);not null" json:"value"`
	Category    string    `gorm:"column:category;type:varchar(64);not null;default:'Geral'" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AgencyExpense) TableName() string {
	return "agency_expenses"
}
