package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a user of the application in the domain.
type User struct {
	UserID            string     `json:"userID"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	PreferredCurrency Currency   `json:"preferredCurrency"`
	IsEmailVerified   bool       `json:"isEmailVerified"`
	LastLoginAt       *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// NewUser lower-cases the email. An empty preferred currency defaults to TRY.
func NewUser(email, passwordHash, firstName, lastName string, preferred Currency) *User {
	if preferred == "" {
		preferred = TRY
	}
	return &User{
		UserID:            uuid.NewString(),
		Email:             NormalizeEmail(email),
		PasswordHash:      passwordHash,
		FirstName:         firstName,
		LastName:          lastName,
		PreferredCurrency: preferred,
		AuditFields:       newAuditFields(),
	}
}

// NormalizeEmail is the canonical form used for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) UpdateProfile(firstName, lastName, phone string, dateOfBirth *time.Time, preferred Currency) {
	u.FirstName = firstName
	u.LastName = lastName
	u.PhoneNumber = phone
	u.DateOfBirth = dateOfBirth
	if preferred != "" {
		u.PreferredCurrency = preferred
	}
	u.MarkAsUpdated()
}

func (u *User) ChangePassword(passwordHash string) {
	u.PasswordHash = passwordHash
	u.MarkAsUpdated()
}

func (u *User) VerifyEmail() {
	u.IsEmailVerified = true
	u.MarkAsUpdated()
}

func (u *User) RecordLogin() {
	t := now()
	u.LastLoginAt = &t
	u.MarkAsUpdated()
}
