package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation нарушение уникального индекса (23505)
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.UniqueViolation
}

// isExclusionViolation нарушение ограничения EXCLUDE (23P01), пересечение бронирований
func isExclusionViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.ExclusionViolation
}

// isCheckViolation нарушение CHECK, например отрицательный остаток или баланс
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.CheckViolation
}

// isForeignKeyViolation ссылка на несуществующую запись
func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.ForeignKeyViolation
}

// isInvalidInput значение не приводится к типу столбца, например некорректный UUID
func isInvalidInput(err error) bool {
	return pgErrorCode(err) == pgerrcode.InvalidTextRepresentation
}

// notFound сворачивает отсутствие строки и некорректный ключ в доменную ошибку
func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || isInvalidInput(err)
}
