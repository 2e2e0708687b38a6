package models

import "time"

// User is an account owner. CreatedAt doubles as the registration timestamp
// the trial window is computed from.
type User struct {
	ID               string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email            string     `gorm:"column:email;type:varchar(254);not null;uniqueIndex" json:"email"`
	Name             string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	PasswordHash     string     `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	EmailConfirmedAt *time.Time `gorm:"column:email_confirmed_at;default:null" json:"email_confirmed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) EmailConfirmed() bool {
	return u != nil && u.EmailConfirmedAt != nil
}
