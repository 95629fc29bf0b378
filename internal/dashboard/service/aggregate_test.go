package service

import (
	"reflect"
	"testing"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func invoice(total string, status invoicedomain.PaymentStatus, billType invoicedomain.BillType) *invoicedomain.Invoice {
	inv := &invoicedomain.Invoice{
		Total:    decimal.NullDecimal{Decimal: dec(total), Valid: true},
		Status:   status,
		BillType: billType,
	}
	switch status {
	case invoicedomain.StatusPaid:
		inv.AmountReceived = dec(total)
	default:
		inv.RemainingAmount = dec(total)
	}
	return inv
}

func TestAggregateDebitCreditSplit(t *testing.T) {
	invoices := []*invoicedomain.Invoice{
		invoice("500", invoicedomain.StatusPaid, invoicedomain.BillTypeDebit),
		invoice("300", invoicedomain.StatusUnpaid, invoicedomain.BillTypeCredit),
	}

	summary := Aggregate(invoices, 2)

	if !summary.DebitInvoiced.Equal(dec("500")) || !summary.DebitCollected.Equal(dec("500")) {
		t.Fatalf("unexpected debit totals: %s / %s", summary.DebitInvoiced, summary.DebitCollected)
	}
	if !summary.CreditInvoiced.Equal(dec("300")) || !summary.CreditCollected.IsZero() {
		t.Fatalf("unexpected credit totals: %s / %s", summary.CreditInvoiced, summary.CreditCollected)
	}
	if !summary.Outstanding.Equal(dec("300")) {
		t.Fatalf("expected outstanding 300, got %s", summary.Outstanding)
	}
	if !summary.CollectionRate.Equal(dec("62.5")) {
		t.Fatalf("expected collection rate 62.5, got %s", summary.CollectionRate)
	}
}

func TestAggregateExcludesUnclassifiedFromSplits(t *testing.T) {
	invoices := []*invoicedomain.Invoice{
		invoice("100", invoicedomain.StatusPaid, invoicedomain.BillTypeNone),
	}

	summary := Aggregate(invoices, 1)

	if !summary.TotalInvoiced.Equal(dec("100")) {
		t.Fatalf("expected total invoiced 100, got %s", summary.TotalInvoiced)
	}
	if !summary.DebitInvoiced.IsZero() || !summary.CreditInvoiced.IsZero() {
		t.Fatalf("expected unclassified invoice excluded from splits")
	}
}

func TestAggregatePartialUsesReceivedAndRemaining(t *testing.T) {
	inv := &invoicedomain.Invoice{
		Total:           decimal.NullDecimal{Decimal: dec("1180"), Valid: true},
		Status:          invoicedomain.StatusPartial,
		AmountReceived:  dec("300"),
		RemainingAmount: dec("880"),
	}

	summary := Aggregate([]*invoicedomain.Invoice{inv}, 1)

	if !summary.TotalCollected.Equal(dec("300")) {
		t.Fatalf("expected collected 300, got %s", summary.TotalCollected)
	}
	if !summary.Outstanding.Equal(dec("880")) {
		t.Fatalf("expected outstanding 880, got %s", summary.Outstanding)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	invoices := []*invoicedomain.Invoice{
		invoice("500", invoicedomain.StatusPaid, invoicedomain.BillTypeDebit),
		invoice("300", invoicedomain.StatusUnpaid, invoicedomain.BillTypeCredit),
	}

	first := Aggregate(invoices, 2)
	second := Aggregate(invoices, 2)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical summaries, got %+v vs %+v", first, second)
	}
}

func TestAggregateOutstandingNeverNegative(t *testing.T) {
	inv := &invoicedomain.Invoice{
		Total:           decimal.NullDecimal{Decimal: dec("100"), Valid: true},
		Status:          invoicedomain.StatusPartial,
		AmountReceived:  dec("150"),
		RemainingAmount: dec("-50"),
	}

	summary := Aggregate([]*invoicedomain.Invoice{inv}, 1)
	if summary.Outstanding.IsNegative() {
		t.Fatalf("expected non-negative outstanding, got %s", summary.Outstanding)
	}
}

func TestAggregateEmptySnapshot(t *testing.T) {
	summary := Aggregate(nil, 0)
	if !summary.CollectionRate.IsZero() {
		t.Fatalf("expected zero rate with nothing invoiced, got %s", summary.CollectionRate)
	}
	if !summary.Outstanding.IsZero() {
		t.Fatalf("expected zero outstanding, got %s", summary.Outstanding)
	}
}

func TestAggregateLegacyAmountFallback(t *testing.T) {
	inv := &invoicedomain.Invoice{
		LegacyAmount: decimal.NullDecimal{Decimal: dec("250"), Valid: true},
		Status:       invoicedomain.StatusUnpaid,
	}

	summary := Aggregate([]*invoicedomain.Invoice{inv}, 1)
	if !summary.TotalInvoiced.Equal(dec("250")) {
		t.Fatalf("expected legacy amount counted, got %s", summary.TotalInvoiced)
	}
	if !summary.Outstanding.Equal(dec("250")) {
		t.Fatalf("expected outstanding 250, got %s", summary.Outstanding)
	}
}
