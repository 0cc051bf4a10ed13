package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"gorm duplicate", gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, gorm.ErrDuplicatedKey},
		{"wrapped mysql duplicate", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), gorm.ErrDuplicatedKey},
		{"postgres unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, gorm.ErrDuplicatedKey},
		{"mysql other", &mysql.MySQLError{Number: 1045}, nil},
		{"postgres other", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, nil},
		{"unrelated", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			switch {
			case tt.err == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
