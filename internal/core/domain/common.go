package domain

import "time"

// now is swapped in tests that need a fixed clock.
var now = func() time.Time { return time.Now().UTC() }

// AuditFields holds the identity-independent bookkeeping shared by every entity.
// Rows are never physically removed; Delete flips IsDeleted and stamps DeletedAt.
type AuditFields struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	IsDeleted bool       `json:"-"`
	DeletedAt *time.Time `json:"-"`
}

func newAuditFields() AuditFields {
	return AuditFields{CreatedAt: now()}
}

// MarkAsUpdated stamps UpdatedAt.
func (a *AuditFields) MarkAsUpdated() {
	t := now()
	a.UpdatedAt = &t
}

// MarkAsDeleted soft-deletes the entity.
func (a *AuditFields) MarkAsDeleted() {
	t := now()
	a.IsDeleted = true
	a.DeletedAt = &t
	a.UpdatedAt = &t
}
