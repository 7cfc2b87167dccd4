package mapping

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d *domain.User) models.User {
	return models.User{
		UserID:            d.UserID,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		PhoneNumber:       nullable(d.PhoneNumber),
		DateOfBirth:       d.DateOfBirth,
		PreferredCurrency: string(d.PreferredCurrency),
		IsEmailVerified:   d.IsEmailVerified,
		LastLoginAt:       d.LastLoginAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:            m.UserID,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		PhoneNumber:       deref(m.PhoneNumber),
		DateOfBirth:       m.DateOfBirth,
		PreferredCurrency: domain.Currency(m.PreferredCurrency),
		IsEmailVerified:   m.IsEmailVerified,
		LastLoginAt:       m.LastLoginAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelRefreshToken(d *domain.RefreshToken) models.RefreshToken {
	return models.RefreshToken{
		RefreshTokenID:  d.RefreshTokenID,
		UserID:          d.UserID,
		Token:           d.Token,
		ExpiresAt:       d.ExpiresAt,
		CreatedByIP:     nullable(d.CreatedByIP),
		IsRevoked:       d.IsRevoked,
		RevokedAt:       d.RevokedAt,
		RevokedByIP:     nullable(d.RevokedByIP),
		ReplacedByToken: nullable(d.ReplacedByToken),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		RefreshTokenID:  m.RefreshTokenID,
		UserID:          m.UserID,
		Token:           m.Token,
		ExpiresAt:       m.ExpiresAt.UTC(),
		CreatedByIP:     deref(m.CreatedByIP),
		IsRevoked:       m.IsRevoked,
		RevokedAt:       m.RevokedAt,
		RevokedByIP:     deref(m.RevokedByIP),
		ReplacedByToken: deref(m.ReplacedByToken),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
