package domain

import "github.com/shopspring/decimal"

// MaxMarginPercent - наибольшая наценка, которая помещается в NUMERIC(6,2)
var MaxMarginPercent = decimal.RequireFromString("9999.99")

// Settings - единственная запись с глобальной наценкой
type Settings struct {
	MarginPercent decimal.Decimal
}

func (s *Settings) Validate() error {
	if s.MarginPercent.IsNegative() {
		return NewValidationError("margin_percent must not be negative")
	}
	if !s.MarginPercent.Equal(s.MarginPercent.Round(2)) {
		return NewValidationError("margin_percent must have at most 2 decimal places")
	}
	if s.MarginPercent.GreaterThan(MaxMarginPercent) {
		return NewValidationError("margin_percent must be at most %s", MaxMarginPercent.StringFixed(2))
	}
	return nil
}
