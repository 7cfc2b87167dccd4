package mapping

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/models"
)

func ToModelCategory(d *domain.Category) models.Category {
	return models.Category{
		CategoryID:       d.CategoryID,
		UserID:           d.UserID,
		Name:             d.Name,
		TransactionType:  string(d.TransactionType),
		CategoryType:     string(d.Type),
		Icon:             nullable(d.Icon),
		Color:            nullable(d.Color),
		IsDefault:        d.IsDefault,
		IsActive:         d.IsActive,
		ParentCategoryID: d.ParentCategoryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		UserID:           m.UserID,
		Name:             m.Name,
		TransactionType:  domain.TransactionType(m.TransactionType),
		Type:             domain.CategoryType(m.CategoryType),
		Icon:             deref(m.Icon),
		Color:            deref(m.Color),
		IsDefault:        m.IsDefault,
		IsActive:         m.IsActive,
		ParentCategoryID: m.ParentCategoryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
