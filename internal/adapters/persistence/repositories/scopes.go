package repositories

import "gorm.io/gorm"

// withStatus filters on status unless it is empty
func withStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

// withSearch matches employees by code, name or email
func withSearch(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		q := "%" + search + "%"
		return db.Where("employee_code LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", q, q, q, q)
	}
}
