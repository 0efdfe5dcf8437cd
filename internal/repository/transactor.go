package repository

import "context"

// Transactor выполняет fn в одной транзакции. Репозитории, получившие
// переданный в fn контекст, работают внутри этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
