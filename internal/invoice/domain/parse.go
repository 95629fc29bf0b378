package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPaymentDays is the fallback payment term applied when the
// payment-term text is present but not numeric.
const DefaultPaymentDays = 30

// IsNotApplicable reports whether a free-form field value means "this
// concept does not apply". Trimmed and lowercased, the accepted
// spellings are "n/a", "na", "not applicable" and "notapplicable".
func IsNotApplicable(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "n/a", "na", "not applicable", "notapplicable":
		return true
	default:
		return false
	}
}

// ParseAmount parses a numeric string into a decimal. Empty or
// non-numeric input falls back to zero, it is never an error.
func ParseAmount(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}

// TaxSpec is the parsed tax field of an invoice. NotApplicable is
// distinct from a zero percent rate.
type TaxSpec struct {
	NotApplicable bool
	Percent       decimal.Decimal
}

// ParseTaxSpec parses free-form tax text into either the not-applicable
// sentinel or a percentage. Non-numeric input falls back to zero
// percent. Values outside [0,100] are accepted as given.
func ParseTaxSpec(raw string) TaxSpec {
	if IsNotApplicable(raw) {
		return TaxSpec{NotApplicable: true}
	}
	return TaxSpec{Percent: ParseAmount(raw)}
}

// TaxSpecFromPercent rebuilds a TaxSpec from the stored column value.
func TaxSpecFromPercent(percent decimal.NullDecimal) TaxSpec {
	if !percent.Valid {
		return TaxSpec{NotApplicable: true}
	}
	return TaxSpec{Percent: percent.Decimal}
}

// NullPercent converts a TaxSpec back into its stored column value.
func (t TaxSpec) NullPercent() decimal.NullDecimal {
	if t.NotApplicable {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: t.Percent, Valid: true}
}

// ParsePaymentTerm parses free-form payment-term text. The
// not-applicable sentinel yields nil, meaning no due date can be
// derived. Non-numeric input falls back to DefaultPaymentDays.
func ParsePaymentTerm(raw string) *int {
	if IsNotApplicable(raw) {
		return nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		days = DefaultPaymentDays
	}
	return &days
}

// ParseStatus normalizes a payment status value, defaulting to unpaid.
func ParseStatus(raw string) PaymentStatus {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPaid:
		return StatusPaid
	case StatusPartial:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}

// ParseBillType normalizes a bill type value, defaulting to none.
func ParseBillType(raw string) BillType {
	switch BillType(strings.ToLower(strings.TrimSpace(raw))) {
	case BillTypeDebit:
		return BillTypeDebit
	case BillTypeCredit:
		return BillTypeCredit
	default:
		return BillTypeNone
	}
}
