package service

import (
	"sort"
	"time"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	perioddomain "github.com/hotaeshwar/crm-sub000/internal/period/domain"
)

// BucketMonth folds invoices into a single monthly summary. Callers are
// expected to pass only invoices issued in that month.
func BucketMonth(year int, month time.Month, invoices []*invoicedomain.Invoice) perioddomain.MonthSummary {
	summary := perioddomain.MonthSummary{Year: year, Month: month}
	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}
		summary.Count++
		amount := invoice.EffectiveAmount()
		summary.Total = summary.Total.Add(amount)

		switch invoice.Status {
		case invoicedomain.StatusPaid:
			summary.Paid.Count++
			summary.Paid.Total = summary.Paid.Total.Add(amount)
		case invoicedomain.StatusPartial:
			summary.Partial.Count++
			summary.Partial.Total = summary.Partial.Total.Add(amount)
		default:
			summary.Unpaid.Count++
			summary.Unpaid.Total = summary.Unpaid.Total.Add(amount)
		}
	}
	return summary
}

// BucketYear folds a year's invoices into the yearly summary and its
// twelve monthly cells, keyed by each invoice's issue month.
func BucketYear(year int, invoices []*invoicedomain.Invoice) perioddomain.YearSummary {
	byMonth := make(map[time.Month][]*invoicedomain.Invoice)
	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}
		byMonth[invoice.IssueDate.UTC().Month()] = append(byMonth[invoice.IssueDate.UTC().Month()], invoice)
	}

	summary := perioddomain.YearSummary{Year: year}
	for i := 0; i < 12; i++ {
		month := time.Month(i + 1)
		cell := BucketMonth(year, month, byMonth[month])
		summary.Months[i] = cell

		summary.Count += cell.Count
		summary.Total = summary.Total.Add(cell.Total)
		summary.Paid.Count += cell.Paid.Count
		summary.Paid.Total = summary.Paid.Total.Add(cell.Paid.Total)
		summary.Partial.Count += cell.Partial.Count
		summary.Partial.Total = summary.Partial.Total.Add(cell.Partial.Total)
		summary.Unpaid.Count += cell.Unpaid.Count
		summary.Unpaid.Total = summary.Unpaid.Total.Add(cell.Unpaid.Total)
	}
	return summary
}

// DistinctYears collects the set of years invoices were issued in,
// always including the current year, sorted descending.
func DistinctYears(invoices []*invoicedomain.Invoice, now time.Time) []int {
	seen := map[int]bool{now.UTC().Year(): true}
	for _, invoice := range invoices {
		if invoice == nil || invoice.IssueDate.IsZero() {
			continue
		}
		seen[invoice.IssueDate.UTC().Year()] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
