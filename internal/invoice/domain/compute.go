package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Totals holds the derived financial fields of an invoice.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal
}

// ComputeTotals derives subtotal, tax, total and remaining balance from
// the line items, tax spec, payment status and received amount.
//
// Total is always subtotal plus tax. Remaining is zero once paid, the
// full total while unpaid, and total minus the received amount while
// partially paid. Negative line amounts flow through unchanged.
func ComputeTotals(services []ServiceItem, tax TaxSpec, status PaymentStatus, amountReceived decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range services {
		subtotal = subtotal.Add(item.Amount)
	}

	taxAmount := decimal.Zero
	if !tax.NotApplicable {
		taxAmount = subtotal.Mul(tax.Percent).Div(oneHundred)
	}

	total := subtotal.Add(taxAmount)

	var remaining decimal.Decimal
	switch status {
	case StatusPaid:
		remaining = decimal.Zero
	case StatusPartial:
		remaining = total.Sub(amountReceived)
	default:
		remaining = total
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     total,
		Remaining: remaining,
	}
}

// Recompute refreshes the invoice's derived fields in place.
func (i *Invoice) Recompute() {
	received := decimal.Zero
	if i.Status == StatusPartial {
		received = i.AmountReceived
	}

	totals := ComputeTotals(i.Services, TaxSpecFromPercent(i.TaxPercent), i.Status, received)
	i.Subtotal = decimal.NullDecimal{Decimal: totals.Subtotal, Valid: true}
	i.TaxAmount = totals.TaxAmount
	i.Total = decimal.NullDecimal{Decimal: totals.Total, Valid: true}
	i.RemainingAmount = totals.Remaining
	if i.Status != StatusPartial {
		i.AmountReceived = received
	}
	if i.Status == StatusPaid {
		i.AmountReceived = totals.Total
	}
}
