package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// translateError maps unique constraint violations of either driver to
// gorm.ErrDuplicatedKey and returns every other error unchanged
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if IsDuplicate(err) {
		return gorm.ErrDuplicatedKey
	}
	return err
}

// IsDuplicate reports whether err is a unique constraint violation
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
