// Package domain defines the receivables dashboard summary.
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Summary is the derived receivables snapshot shown on the dashboard.
type Summary struct {
	TotalClients  int64 `json:"total_clients"`
	TotalInvoices int64 `json:"total_invoices"`

	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	Outstanding    decimal.Decimal `json:"outstanding"`

	DebitInvoiced   decimal.Decimal `json:"debit_invoiced"`
	DebitCollected  decimal.Decimal `json:"debit_collected"`
	CreditInvoiced  decimal.Decimal `json:"credit_invoiced"`
	CreditCollected decimal.Decimal `json:"credit_collected"`

	// CollectionRate is a percentage rounded to one decimal place,
	// zero when nothing has been invoiced.
	CollectionRate decimal.Decimal `json:"collection_rate"`
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

var ErrInvalidUser = errors.New("invalid_user")
