// Package domain contains persistence models for payment recording.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Method is how a payment was made.
type Method string

const (
	MethodBank Method = "bank"
	MethodCash Method = "cash"
	MethodUPI  Method = "upi"
	MethodCard Method = "card"
)

// Payment records a settlement against an invoice.
//
// Amount is a snapshot of the invoice's effective amount at recording
// time. Editing the invoice afterwards does not change it.
type Payment struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	UserID        snowflake.ID    `gorm:"column:user_id;not null;index" json:"user_id"`
	InvoiceID     snowflake.ID    `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	InvoiceNumber string          `gorm:"column:invoice_number;type:text" json:"invoice_number"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric;not null;default:0" json:"amount"`
	Method        Method          `gorm:"column:method;type:text;not null" json:"method"`
	PaymentDate   time.Time       `gorm:"column:payment_date;not null;index" json:"payment_date"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }
