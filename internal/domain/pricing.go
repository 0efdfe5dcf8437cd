package domain

import "github.com/shopspring/decimal"

var (
	hundred       = decimal.NewFromInt(100)
	priceStepSize = decimal.RequireFromString("0.05")

	// MaxMoney - наибольшая сумма, которая помещается в NUMERIC(10,2)
	MaxMoney = decimal.RequireFromString("99999999.99")
)

// ValidateMoney проверяет, что сумма хранится без потерь: не больше двух
// знаков после запятой и по модулю не больше MaxMoney.
func ValidateMoney(field string, value decimal.Decimal) error {
	if !value.Equal(value.Round(2)) {
		return NewValidationError("%s must have at most 2 decimal places", field)
	}
	if value.Abs().GreaterThan(MaxMoney) {
		return NewValidationError("%s must be at most %s", field, MaxMoney.StringFixed(2))
	}
	return nil
}

// CalculatePrice выводит цену за штуку из закупочной цены упаковки без налога.
// Результат округляется до ближайших 0.05 по правилу half-up.
func CalculatePrice(costExTax decimal.Decimal, packSize int, taxRate TaxRate, marginPercent decimal.Decimal) decimal.Decimal {
	if packSize == 0 {
		return decimal.Zero
	}

	taxMultiplier := decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(taxRate)).Div(hundred))
	unitCost := costExTax.Mul(taxMultiplier).Div(decimal.NewFromInt(int64(packSize)))

	marginMultiplier := decimal.NewFromInt(1).Add(marginPercent.Div(hundred))
	price := unitCost.Mul(marginMultiplier)

	return RoundToStep(price)
}

// RoundToStep округляет до ближайших 0.05; половина округляется вверх
func RoundToStep(value decimal.Decimal) decimal.Decimal {
	steps := value.Div(priceStepSize).Round(0)
	return steps.Mul(priceStepSize).Round(2)
}
