package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ems-portal/internal/core/domain"

	"gorm.io/gorm"
)

// storageError wraps a repository failure so handlers answer with a generic message
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseDate parses a YYYY-MM-DD date in UTC
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalid("%s must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

// parseOptionalDate is parseDate for nullable columns; an empty value yields nil
func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
