// Package domain defines calendar bucketing of invoices by issue date.
package domain

import (
	"context"
	"errors"
	"time"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// StatusBreakdown is the count and value of invoices in one payment
// status within a bucket.
type StatusBreakdown struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthSummary aggregates the invoices issued in one calendar month.
type MonthSummary struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`

	Paid    StatusBreakdown `json:"paid"`
	Partial StatusBreakdown `json:"partial"`
	Unpaid  StatusBreakdown `json:"unpaid"`
}

// YearSummary aggregates a calendar year plus its twelve monthly cells.
type YearSummary struct {
	Year  int             `json:"year"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`

	Paid    StatusBreakdown `json:"paid"`
	Partial StatusBreakdown `json:"partial"`
	Unpaid  StatusBreakdown `json:"unpaid"`

	Months [12]MonthSummary `json:"months"`
}

type MonthRequest struct {
	Year  int
	Month time.Month
}

type YearRequest struct {
	Year int
}

// DayRequest selects invoices issued on one calendar date, optionally
// narrowed by status and a free-text search over invoice number, client
// name and client company.
type DayRequest struct {
	Date   time.Time
	Status string
	Query  string
}

// DayInvoice is an invoice plus the client fields the day view searches
// and displays. ClientName is "Unknown" when the client was deleted.
type DayInvoice struct {
	Invoice       invoicedomain.Invoice `json:"invoice"`
	ClientName    string                `json:"client_name"`
	ClientCompany string                `json:"client_company,omitempty"`
}

type Service interface {
	Month(ctx context.Context, req MonthRequest) (MonthSummary, error)
	Year(ctx context.Context, req YearRequest) (YearSummary, error)
	Day(ctx context.Context, req DayRequest) ([]DayInvoice, error)
	Years(ctx context.Context) ([]int, error)
}

var (
	ErrInvalidUser   = errors.New("invalid_user")
	ErrInvalidPeriod = errors.New("invalid_period")
)
