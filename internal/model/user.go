package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role labels carried inside session tokens. Authorization beyond carrying
// the label is out of scope for this service.
const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// DefaultBalance is the initial grant every new account receives.
var DefaultBalance = decimal.RequireFromString("100000.00")

// User represents a bank account holder.
type User struct {
	UID          uint            `json:"uid" gorm:"primaryKey;column:uid"`
	Username     string          `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string          `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string          `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Balance      decimal.Decimal `json:"balance" gorm:"type:decimal(15,2);not null"`
	Phone        string          `json:"phone" gorm:"size:20"`
	Role         string          `json:"role" gorm:"size:20;not null;default:'customer'"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relations
	Tokens []UserToken `json:"-" gorm:"foreignKey:UserID"`
}
