// Package domain contains persistence models and financial computation
// for invoicing.
package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

const (
	StatusUnpaid  PaymentStatus = "unpaid"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

// BillType classifies an invoice as payable or receivable, independent
// of payment status.
type BillType string

const (
	BillTypeDebit  BillType = "debit"
	BillTypeCredit BillType = "credit"
	BillTypeNone   BillType = "none"
)

// ServiceItem is a single billable line on an invoice.
type ServiceItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// UnmarshalJSON accepts the amount as either a JSON number or a numeric
// string. Non-numeric values fall back to zero rather than failing.
func (s *ServiceItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string          `json:"name"`
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Name = raw.Name
	s.Amount = decimal.Zero
	if len(raw.Amount) == 0 {
		return nil
	}

	var asString string
	if err := json.Unmarshal(raw.Amount, &asString); err == nil {
		s.Amount = ParseAmount(asString)
		return nil
	}

	var asNumber decimal.Decimal
	if err := json.Unmarshal(raw.Amount, &asNumber); err == nil {
		s.Amount = asNumber
	}
	return nil
}

// ServiceItems is stored as a JSON column on the invoice row.
type ServiceItems []ServiceItem

// Invoice represents a generated invoice owned by a single user.
//
// Subtotal, TaxAmount, Total, RemainingAmount and Status are derived
// fields. They are recomputed in full whenever services, tax, status or
// the received amount change, never patched incrementally.
type Invoice struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID   snowflake.ID `gorm:"column:user_id;not null;index" json:"user_id"`
	ClientID snowflake.ID `gorm:"column:client_id;index" json:"client_id"`
	Number   string       `gorm:"column:number;type:text;not null;uniqueIndex" json:"number"`

	IssueDate time.Time  `gorm:"column:issue_date;not null;index" json:"issue_date"`
	DueDate   *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`

	Services ServiceItems `gorm:"column:services;serializer:json" json:"services"`

	// TaxPercent is null when tax is not applicable to this invoice,
	// which is distinct from a zero percent rate.
	TaxPercent decimal.NullDecimal `gorm:"column:tax_percent;type:numeric" json:"tax_percent"`

	Subtotal  decimal.NullDecimal `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	TaxAmount decimal.Decimal     `gorm:"column:tax_amount;type:numeric;not null;default:0" json:"tax_amount"`
	Total     decimal.NullDecimal `gorm:"column:total;type:numeric" json:"total"`

	// LegacyAmount carries the single-amount field of records imported
	// from before line items existed. Only read through EffectiveAmount.
	LegacyAmount decimal.NullDecimal `gorm:"column:amount;type:numeric" json:"amount,omitempty"`

	Status          PaymentStatus   `gorm:"column:status;type:text;not null;default:'unpaid';index" json:"status"`
	AmountReceived  decimal.Decimal `gorm:"column:amount_received;type:numeric;not null;default:0" json:"amount_received"`
	RemainingAmount decimal.Decimal `gorm:"column:remaining_amount;type:numeric;not null;default:0" json:"remaining_amount"`

	// PaymentDays is null when the payment term is not applicable, in
	// which case no due date can be derived from the issue date.
	PaymentDays *int `gorm:"column:payment_days" json:"payment_days,omitempty"`

	BillType BillType `gorm:"column:bill_type;type:text;not null;default:'none';index" json:"bill_type"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// EffectiveAmount is the single place where the amount-field precedence
// rule lives: total, else subtotal, else the legacy amount, else zero.
func (i *Invoice) EffectiveAmount() decimal.Decimal {
	switch {
	case i.Total.Valid:
		return i.Total.Decimal
	case i.Subtotal.Valid:
		return i.Subtotal.Decimal
	case i.LegacyAmount.Valid:
		return i.LegacyAmount.Decimal
	default:
		return decimal.Zero
	}
}

// InvoiceSequence is a per-user per-day counter backing invoice number
// generation. Incremented atomically with an upsert.
type InvoiceSequence struct {
	UserID  snowflake.ID `gorm:"column:user_id;primaryKey"`
	Day     string       `gorm:"column:day;type:text;primaryKey"`
	Counter int64        `gorm:"column:counter;not null;default:0"`
}

// TableName sets the database table name.
func (InvoiceSequence) TableName() string { return "invoice_sequences" }
