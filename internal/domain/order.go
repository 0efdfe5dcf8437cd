package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64
	CreatedAt   time.Time
	MemberID    int64
	Member      *TeamMember
	Items       []OrderItem
	TotalAmount decimal.Decimal
}

// OrderItem.UnitPrice - снимок цены товара на момент создания строки, дальше не меняется
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Product   *Product
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i *OrderItem) Amount() decimal.Decimal {
	return LineAmount(i.Quantity, i.UnitPrice)
}

func LineAmount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotal - сумма quantity * unit_price по всем строкам заказа
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amount())
	}
	return total
}

// MaxItemQuantity - верхняя граница количества в одной строке заказа
const MaxItemQuantity = 10000

// ValidateQuantity проверяет количество в строке заказа
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return NewValidationError("quantity must be at least 1")
	}
	if quantity > MaxItemQuantity {
		return NewValidationError("quantity must be at most %d", MaxItemQuantity)
	}
	return nil
}

// NewOrderLine - строка запроса на создание заказа
type NewOrderLine struct {
	ProductID int64
	Quantity  int
}

// ValidateOrderLines проверяет строки до обращения к БД
func ValidateOrderLines(lines []NewOrderLine) error {
	if len(lines) == 0 {
		return NewValidationError("items: at least one item is required")
	}

	seen := make(map[int64]struct{}, len(lines))
	for i, line := range lines {
		if err := ValidateQuantity(line.Quantity); err != nil {
			return NewValidationError("items[%d].%s", i, err.Error())
		}
		if _, dup := seen[line.ProductID]; dup {
			return NewValidationError("items[%d].product_id %d appears more than once in the order", i, line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
	}
	return nil
}

type OrderFilter struct {
	MemberID *int64
}
