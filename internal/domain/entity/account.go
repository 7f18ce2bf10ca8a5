// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a member of the sales organization. The username is the
// login handle and is stored lowercased; comparisons are case-insensitive.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Phone        string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the public projection of an Account that is safe to hand to
// clients and to store in a session. It never carries the password hash.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     Role      `json:"role"`
}

// Identity returns the public projection of the account.
func (a *Account) Identity() Identity {
	return Identity{
		ID:       a.ID,
		Username: a.Username,
		FullName: a.FullName,
		Role:     a.Role,
	}
}
