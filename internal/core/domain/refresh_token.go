package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a long-lived credential exchanged for access tokens.
// Token holds the SHA-256 hash of the value handed to the client.
type RefreshToken struct {
	RefreshTokenID  string     `json:"refreshTokenID"`
	UserID          string     `json:"userID"`
	Token           string     `json:"-"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	CreatedByIP     string     `json:"createdByIP"`
	IsRevoked       bool       `json:"isRevoked"`
	RevokedAt       *time.Time `json:"revokedAt,omitempty"`
	RevokedByIP     string     `json:"revokedByIP,omitempty"`
	ReplacedByToken string     `json:"-"`
	AuditFields
}

func NewRefreshToken(userID, tokenHash string, expiresAt time.Time, createdByIP string) *RefreshToken {
	return &RefreshToken{
		RefreshTokenID: uuid.NewString(),
		UserID:         userID,
		Token:          tokenHash,
		ExpiresAt:      expiresAt.UTC(),
		CreatedByIP:    createdByIP,
		AuditFields:    newAuditFields(),
	}
}

// Revoke is one-way. A second call keeps the first revocation's details.
func (t *RefreshToken) Revoke(ip, replacedBy string) {
	if t.IsRevoked {
		return
	}
	at := now()
	t.IsRevoked = true
	t.RevokedAt = &at
	t.RevokedByIP = ip
	t.ReplacedByToken = replacedBy
	t.MarkAsUpdated()
}

func (t *RefreshToken) IsExpired(at time.Time) bool {
	return !at.Before(t.ExpiresAt)
}

func (t *RefreshToken) IsActive(at time.Time) bool {
	return !t.IsRevoked && !t.IsExpired(at)
}
