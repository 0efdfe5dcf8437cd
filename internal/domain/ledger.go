package domain

import "github.com/shopspring/decimal"

type OrderItemEventKind string

const (
	OrderItemCreated OrderItemEventKind = "created"
	OrderItemUpdated OrderItemEventKind = "updated"
	OrderItemDeleted OrderItemEventKind = "deleted"
)

// OrderItemEvent описывает изменение строки заказа, влияющее на баланс участника
type OrderItemEvent struct {
	Kind             OrderItemEventKind
	MemberID         int64
	UnitPrice        decimal.Decimal
	Quantity         int
	PreviousQuantity int
}

// BalanceDelta - на сколько изменится баланс участника.
// Создание списывает, удаление возвращает, правка списывает только разницу.
func (e OrderItemEvent) BalanceDelta() decimal.Decimal {
	switch e.Kind {
	case OrderItemCreated:
		return LineAmount(e.Quantity, e.UnitPrice).Neg()
	case OrderItemUpdated:
		return LineAmount(e.Quantity-e.PreviousQuantity, e.UnitPrice).Neg()
	case OrderItemDeleted:
		return LineAmount(e.Quantity, e.UnitPrice)
	}
	return decimal.Zero
}
