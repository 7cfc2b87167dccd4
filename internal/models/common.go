package models

import "time"

// AuditFields mirrors the audit and soft-delete columns present on every table.
type AuditFields struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	IsDeleted bool       `db:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
}
