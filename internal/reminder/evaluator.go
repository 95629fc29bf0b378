// Package reminder classifies invoices as overdue and drives the
// one-shot overdue alert.
package reminder

import (
	"math"
	"sort"
	"time"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
)

// OverdueInvoice pairs an invoice with its resolved due date.
type OverdueInvoice struct {
	Invoice     invoicedomain.Invoice `json:"invoice"`
	DueDate     time.Time             `json:"due_date"`
	DaysOverdue int                   `json:"days_overdue"`
}

// ResolveDueDate returns the invoice's due date. An explicit due date
// wins; otherwise it is derived from the issue date plus the payment
// term. With neither, the invoice has no due date and is never overdue.
func ResolveDueDate(invoice *invoicedomain.Invoice) (time.Time, bool) {
	if invoice.DueDate != nil {
		return *invoice.DueDate, true
	}
	if !invoice.IssueDate.IsZero() && invoice.PaymentDays != nil {
		return invoice.IssueDate.AddDate(0, 0, *invoice.PaymentDays), true
	}
	return time.Time{}, false
}

// IsOverdue reports whether the invoice is overdue as of today. Paid
// invoices are never overdue. Both dates are truncated to midnight
// before comparison, so an invoice due today is not yet overdue.
func IsOverdue(invoice *invoicedomain.Invoice, today time.Time) bool {
	if invoice.Status == invoicedomain.StatusPaid {
		return false
	}
	due, ok := ResolveDueDate(invoice)
	if !ok {
		return false
	}
	return truncateToDay(due).Before(truncateToDay(today))
}

// DaysOverdue counts whole days past the due date, floored at zero.
func DaysOverdue(dueDate, today time.Time) int {
	diff := truncateToDay(today).Sub(truncateToDay(dueDate))
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Evaluate filters the snapshot down to overdue invoices, most overdue
// first.
func Evaluate(invoices []*invoicedomain.Invoice, today time.Time) []OverdueInvoice {
	overdue := make([]OverdueInvoice, 0)
	for _, invoice := range invoices {
		if invoice == nil || !IsOverdue(invoice, today) {
			continue
		}
		due, _ := ResolveDueDate(invoice)
		overdue = append(overdue, OverdueInvoice{
			Invoice:     *invoice,
			DueDate:     due,
			DaysOverdue: DaysOverdue(due, today),
		})
	}

	sort.Slice(overdue, func(i, j int) bool {
		if overdue[i].DaysOverdue != overdue[j].DaysOverdue {
			return overdue[i].DaysOverdue > overdue[j].DaysOverdue
		}
		return overdue[i].Invoice.ID < overdue[j].Invoice.ID
	})
	return overdue
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
