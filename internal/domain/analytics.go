package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Series - данные для графика: подписи и значения одинаковой длины
type Series struct {
	Labels []string
	Values []decimal.Decimal
}

type RankedEntry struct {
	Label string
	Value decimal.Decimal
}

// SummaryTotals - сырые агрегаты из БД
type SummaryTotals struct {
	TotalSpent   decimal.Decimal
	TotalOrders  int
	FirstOrderAt *time.Time
	TotalBalance *decimal.Decimal
}

type Summary struct {
	TotalSpent      decimal.Decimal
	TotalOrders     int
	AvgOrderValue   decimal.Decimal
	AvgOrdersPerDay decimal.Decimal
	TotalBalance    *decimal.Decimal
}

// DailyUnits - количество проданных единиц за день (UTC)
type DailyUnits struct {
	Day   time.Time
	Units int64
}
