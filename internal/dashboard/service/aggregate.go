package service

import (
	dashboarddomain "github.com/hotaeshwar/crm-sub000/internal/dashboard/domain"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Aggregate derives the dashboard summary from a full invoice snapshot.
// It is a pure function: the same snapshot always yields the same
// summary, and it recomputes everything rather than patching a previous
// result.
func Aggregate(invoices []*invoicedomain.Invoice, totalClients int64) dashboarddomain.Summary {
	summary := dashboarddomain.Summary{
		TotalClients:  totalClients,
		TotalInvoices: int64(len(invoices)),
	}

	invoiced := decimal.Zero
	collected := decimal.Zero
	outstanding := decimal.Zero
	debitInvoiced := decimal.Zero
	debitCollected := decimal.Zero
	creditInvoiced := decimal.Zero
	creditCollected := decimal.Zero

	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}

		amount := invoice.EffectiveAmount()
		invoiced = invoiced.Add(amount)

		var take decimal.Decimal
		switch invoice.Status {
		case invoicedomain.StatusPaid:
			take = amount
		case invoicedomain.StatusPartial:
			take = invoice.AmountReceived
			outstanding = outstanding.Add(invoice.RemainingAmount)
		default:
			outstanding = outstanding.Add(amount)
		}
		collected = collected.Add(take)

		switch invoice.BillType {
		case invoicedomain.BillTypeDebit:
			debitInvoiced = debitInvoiced.Add(amount)
			debitCollected = debitCollected.Add(take)
		case invoicedomain.BillTypeCredit:
			creditInvoiced = creditInvoiced.Add(amount)
			creditCollected = creditCollected.Add(take)
		}
	}

	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	summary.TotalInvoiced = invoiced
	summary.TotalCollected = collected
	summary.Outstanding = outstanding
	summary.DebitInvoiced = debitInvoiced
	summary.DebitCollected = debitCollected
	summary.CreditInvoiced = creditInvoiced
	summary.CreditCollected = creditCollected

	if invoiced.IsZero() {
		summary.CollectionRate = decimal.Zero
	} else {
		summary.CollectionRate = collected.Div(invoiced).Mul(oneHundred).Round(1)
	}

	return summary
}
