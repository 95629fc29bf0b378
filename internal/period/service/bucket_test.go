package service

import (
	"testing"
	"time"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func issuedInvoice(issued time.Time, total string, status invoicedomain.PaymentStatus) *invoicedomain.Invoice {
	return &invoicedomain.Invoice{
		IssueDate: issued,
		Total:     decimal.NullDecimal{Decimal: dec(total), Valid: true},
		Status:    status,
	}
}

func TestBucketMonthStatusBreakdown(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	invoices := []*invoicedomain.Invoice{
		issuedInvoice(day, "100", invoicedomain.StatusPaid),
		issuedInvoice(day, "200", invoicedomain.StatusUnpaid),
		issuedInvoice(day, "300", invoicedomain.StatusPartial),
	}

	summary := BucketMonth(2024, time.March, invoices)

	if summary.Count != 3 || !summary.Total.Equal(dec("600")) {
		t.Fatalf("unexpected totals: count=%d total=%s", summary.Count, summary.Total)
	}
	if summary.Paid.Count != 1 || !summary.Paid.Total.Equal(dec("100")) {
		t.Fatalf("unexpected paid breakdown: %+v", summary.Paid)
	}
	if summary.Unpaid.Count != 1 || !summary.Unpaid.Total.Equal(dec("200")) {
		t.Fatalf("unexpected unpaid breakdown: %+v", summary.Unpaid)
	}
	if summary.Partial.Count != 1 || !summary.Partial.Total.Equal(dec("300")) {
		t.Fatalf("unexpected partial breakdown: %+v", summary.Partial)
	}
}

func TestBucketYearTwelveCells(t *testing.T) {
	invoices := []*invoicedomain.Invoice{
		issuedInvoice(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "100", invoicedomain.StatusPaid),
		issuedInvoice(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), "50", invoicedomain.StatusUnpaid),
		issuedInvoice(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "200", invoicedomain.StatusUnpaid),
	}

	summary := BucketYear(2024, invoices)

	if summary.Count != 3 || !summary.Total.Equal(dec("350")) {
		t.Fatalf("unexpected year totals: count=%d total=%s", summary.Count, summary.Total)
	}
	if summary.Months[0].Count != 2 || !summary.Months[0].Total.Equal(dec("150")) {
		t.Fatalf("unexpected january cell: %+v", summary.Months[0])
	}
	if summary.Months[11].Count != 1 {
		t.Fatalf("unexpected december cell: %+v", summary.Months[11])
	}
	for i := 1; i < 11; i++ {
		if summary.Months[i].Count != 0 {
			t.Fatalf("expected empty cell for month %d", i+1)
		}
	}
}

func TestDistinctYearsIncludesCurrent(t *testing.T) {
	invoices := []*invoicedomain.Invoice{
		issuedInvoice(time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), "100", invoicedomain.StatusPaid),
		issuedInvoice(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "100", invoicedomain.StatusPaid),
		issuedInvoice(time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), "100", invoicedomain.StatusPaid),
	}

	years := DistinctYears(invoices, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	expected := []int{2026, 2024, 2022}
	if len(years) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, years)
	}
	for i := range expected {
		if years[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, years)
		}
	}
}
