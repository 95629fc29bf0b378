package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsNotApplicable(t *testing.T) {
	for _, value := range []string{"N/A", "na", "Not Applicable", "NOTAPPLICABLE", "  n/a  "} {
		if !IsNotApplicable(value) {
			t.Fatalf("expected %q to be not-applicable", value)
		}
	}
	for _, value := range []string{"5", "", "abc", "n / a", "none"} {
		if IsNotApplicable(value) {
			t.Fatalf("expected %q to not be not-applicable", value)
		}
	}
}

func TestParseAmountFallsBackToZero(t *testing.T) {
	if got := ParseAmount("12.50"); !got.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("expected 12.50, got %s", got)
	}
	for _, value := range []string{"", "abc", "12..5"} {
		if got := ParseAmount(value); !got.IsZero() {
			t.Fatalf("expected zero for %q, got %s", value, got)
		}
	}
	if got := ParseAmount("-10"); !got.Equal(decimal.NewFromInt(-10)) {
		t.Fatalf("expected -10 to pass through, got %s", got)
	}
}

func TestParseTaxSpec(t *testing.T) {
	if spec := ParseTaxSpec("n/a"); !spec.NotApplicable {
		t.Fatal("expected not-applicable spec")
	}
	if spec := ParseTaxSpec("18"); spec.NotApplicable || !spec.Percent.Equal(decimal.NewFromInt(18)) {
		t.Fatalf("expected 18 percent, got %+v", spec)
	}
	// Non-numeric text falls back to zero percent, not the sentinel.
	if spec := ParseTaxSpec("abc"); spec.NotApplicable || !spec.Percent.IsZero() {
		t.Fatalf("expected zero percent fallback, got %+v", spec)
	}
	// Out-of-range values are accepted as given.
	if spec := ParseTaxSpec("150"); !spec.Percent.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected 150 percent, got %+v", spec)
	}
}

func TestParsePaymentTerm(t *testing.T) {
	if days := ParsePaymentTerm("15"); days == nil || *days != 15 {
		t.Fatalf("expected 15 days, got %v", days)
	}
	if days := ParsePaymentTerm("not applicable"); days != nil {
		t.Fatalf("expected nil for sentinel, got %v", days)
	}
	if days := ParsePaymentTerm("soon"); days == nil || *days != DefaultPaymentDays {
		t.Fatalf("expected default fallback, got %v", days)
	}
}

func TestParseStatusAndBillType(t *testing.T) {
	if got := ParseStatus(" PAID "); got != StatusPaid {
		t.Fatalf("expected paid, got %s", got)
	}
	if got := ParseStatus("bogus"); got != StatusUnpaid {
		t.Fatalf("expected unpaid default, got %s", got)
	}
	if got := ParseBillType("Credit"); got != BillTypeCredit {
		t.Fatalf("expected credit, got %s", got)
	}
	if got := ParseBillType(""); got != BillTypeNone {
		t.Fatalf("expected none default, got %s", got)
	}
}
