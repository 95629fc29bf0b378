package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeTotalsPartialPayment(t *testing.T) {
	services := []ServiceItem{{Name: "Design", Amount: dec("1000")}}
	totals := ComputeTotals(services, ParseTaxSpec("18"), StatusPartial, dec("300"))

	if !totals.Subtotal.Equal(dec("1000")) {
		t.Fatalf("expected subtotal 1000, got %s", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(dec("180")) {
		t.Fatalf("expected tax 180, got %s", totals.TaxAmount)
	}
	if !totals.Total.Equal(dec("1180")) {
		t.Fatalf("expected total 1180, got %s", totals.Total)
	}
	if !totals.Remaining.Equal(dec("880")) {
		t.Fatalf("expected remaining 880, got %s", totals.Remaining)
	}
}

func TestComputeTotalsInvariant(t *testing.T) {
	cases := []struct {
		services []ServiceItem
		tax      string
	}{
		{nil, "18"},
		{[]ServiceItem{{Name: "A", Amount: dec("10.5")}, {Name: "B", Amount: dec("4.5")}}, "n/a"},
		{[]ServiceItem{{Name: "A", Amount: dec("-5")}}, "12.5"},
		{[]ServiceItem{{Name: "A", Amount: dec("99.99")}}, "0"},
	}

	for _, tc := range cases {
		totals := ComputeTotals(tc.services, ParseTaxSpec(tc.tax), StatusUnpaid, decimal.Zero)
		if !totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)) {
			t.Fatalf("total != subtotal + tax for %+v", tc)
		}
	}
}

func TestComputeTotalsEmptyServices(t *testing.T) {
	totals := ComputeTotals(nil, ParseTaxSpec("18"), StatusUnpaid, decimal.Zero)
	if !totals.Subtotal.IsZero() || !totals.Total.IsZero() {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestComputeTotalsNotApplicableTax(t *testing.T) {
	services := []ServiceItem{{Name: "Audit", Amount: dec("250")}}
	totals := ComputeTotals(services, ParseTaxSpec("N/A"), StatusUnpaid, decimal.Zero)
	if !totals.TaxAmount.IsZero() {
		t.Fatalf("expected zero tax, got %s", totals.TaxAmount)
	}
	if !totals.Total.Equal(dec("250")) {
		t.Fatalf("expected total 250, got %s", totals.Total)
	}
}

func TestComputeTotalsRemainingByStatus(t *testing.T) {
	services := []ServiceItem{{Name: "Design", Amount: dec("100")}}
	tax := ParseTaxSpec("n/a")

	if got := ComputeTotals(services, tax, StatusPaid, dec("40")).Remaining; !got.IsZero() {
		t.Fatalf("expected zero remaining when paid, got %s", got)
	}
	if got := ComputeTotals(services, tax, StatusUnpaid, dec("40")).Remaining; !got.Equal(dec("100")) {
		t.Fatalf("expected full remaining when unpaid, got %s", got)
	}
}

func TestEffectiveAmountPrecedence(t *testing.T) {
	invoice := Invoice{
		Total:        decimal.NullDecimal{Decimal: dec("1180"), Valid: true},
		Subtotal:     decimal.NullDecimal{Decimal: dec("1000"), Valid: true},
		LegacyAmount: decimal.NullDecimal{Decimal: dec("900"), Valid: true},
	}
	if got := invoice.EffectiveAmount(); !got.Equal(dec("1180")) {
		t.Fatalf("expected total first, got %s", got)
	}

	invoice.Total = decimal.NullDecimal{}
	if got := invoice.EffectiveAmount(); !got.Equal(dec("1000")) {
		t.Fatalf("expected subtotal second, got %s", got)
	}

	invoice.Subtotal = decimal.NullDecimal{}
	if got := invoice.EffectiveAmount(); !got.Equal(dec("900")) {
		t.Fatalf("expected legacy amount third, got %s", got)
	}

	invoice.LegacyAmount = decimal.NullDecimal{}
	if got := invoice.EffectiveAmount(); !got.IsZero() {
		t.Fatalf("expected zero fallback, got %s", got)
	}
}

func TestServiceItemUnmarshalFlexibleAmount(t *testing.T) {
	var items ServiceItems
	raw := `[{"name":"Design","amount":1000},{"name":"Dev","amount":"250.50"},{"name":"Misc","amount":"abc"}]`
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if !items[0].Amount.Equal(dec("1000")) {
		t.Fatalf("expected numeric amount, got %s", items[0].Amount)
	}
	if !items[1].Amount.Equal(dec("250.50")) {
		t.Fatalf("expected string amount, got %s", items[1].Amount)
	}
	if !items[2].Amount.IsZero() {
		t.Fatalf("expected zero fallback, got %s", items[2].Amount)
	}
}
