package domain

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const DefaultPackSize = 24

type Category struct {
	ID      int64
	Name    string
	Icon    string
	Visible bool
}

// TaxRate - ставка BTW в процентах
type TaxRate int

const (
	TaxRateZero    TaxRate = 0
	TaxRateReduced TaxRate = 9
	TaxRateHigh    TaxRate = 21
)

func (r TaxRate) Valid() bool {
	switch r {
	case TaxRateZero, TaxRateReduced, TaxRateHigh:
		return true
	}
	return false
}

type Product struct {
	ID          int64
	Name        string
	Image       string
	Description string
	CategoryID  int64
	Category    *Category
	Visible     bool
	CostExTax   decimal.Decimal
	PackSize    int
	TaxRate     TaxRate
	Price       decimal.Decimal
}

// Validate проверяет поля, из которых выводится цена
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name is required")
	}
	if utf8.RuneCountInString(p.Name) > 100 {
		return NewValidationError("name must be at most 100 characters")
	}
	if utf8.RuneCountInString(p.Image) > 255 {
		return NewValidationError("image must be at most 255 characters")
	}
	if utf8.RuneCountInString(p.Description) > 255 {
		return NewValidationError("description must be at most 255 characters")
	}
	if !p.TaxRate.Valid() {
		return NewValidationError("tax_rate must be one of 0, 9, 21, got %d", p.TaxRate)
	}
	if p.CostExTax.IsNegative() {
		return NewValidationError("cost_ex_tax must not be negative")
	}
	if err := ValidateMoney("cost_ex_tax", p.CostExTax); err != nil {
		return err
	}
	if p.PackSize < 0 {
		return NewValidationError("pack_size must not be negative")
	}
	return nil
}

// ApplyPricing пересчитывает цену; цена никогда не задается напрямую
func (p *Product) ApplyPricing(marginPercent decimal.Decimal) {
	p.Price = CalculatePrice(p.CostExTax, p.PackSize, p.TaxRate, marginPercent)
}

type ProductFilter struct {
	CategoryID *int64
}
