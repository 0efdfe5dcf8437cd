package postgres

import (
	"errors"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// pgError возвращает код и имя ограничения, если err пришла от PostgreSQL
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

func isUniqueViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == pgForeignKeyViolation
}

func isCheckViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == pgCheckViolation
}

// translateDataError превращает ошибки формата данных (слишком длинная строка,
// число вне диапазона колонки) в VALIDATION_ERROR. Остальные ошибки не меняются.
func translateDataError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgStringTooLong:
		return domain.NewValidationError("value is too long: %s", pgErr.Message)
	case pgNumericOutOfRange:
		return domain.NewValidationError("numeric value is out of range: %s", pgErr.Message)
	}
	return err
}
