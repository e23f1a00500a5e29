package model

import (
	"time"

	apperrors "recipehub/internal/errors"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive is the initial state after signup.
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusWithdrawn is terminal. Withdrawn users are kept, never deleted.
	UserStatusWithdrawn UserStatus = "WITHDRAWN"
)

// User represents a registered member.
type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	LoginID          string     `json:"user_id" gorm:"column:login_id;uniqueIndex;size:20;not null;<-:create"`
	PasswordHash     string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name             string     `json:"name" gorm:"size:255;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Description      string     `json:"description" gorm:"size:1000"`
	Status           UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	StatusModifiedAt *time.Time `json:"status_modified_at,omitempty"`
	RefreshToken     string     `json:"-" gorm:"size:512"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NewUser builds an ACTIVE user from signup data and an already hashed password.
func NewUser(loginID, passwordHash, name, email, description string) *User {
	return &User{
		LoginID:      loginID,
		PasswordHash: passwordHash,
		Name:         name,
		Email:        email,
		Description:  description,
		Status:       UserStatusActive,
	}
}

// IsWithdrawn reports whether the account has been withdrawn.
func (u *User) IsWithdrawn() bool {
	return u.Status == UserStatusWithdrawn
}

// UpdateProfile replaces the public profile fields.
func (u *User) UpdateProfile(name, description string) {
	u.Name = name
	u.Description = description
}

// UpdatePassword stores a new password hash.
func (u *User) UpdatePassword(passwordHash string) {
	u.PasswordHash = passwordHash
}

// UpdateRefreshToken stores the currently valid refresh token. Empty revokes it.
func (u *User) UpdateRefreshToken(token string) {
	u.RefreshToken = token
}

// Withdraw moves the user to WITHDRAWN and revokes the refresh token.
func (u *User) Withdraw(now time.Time) error {
	if u.IsWithdrawn() {
		return apperrors.ErrAlreadyWithdrawn
	}
	u.Status = UserStatusWithdrawn
	u.StatusModifiedAt = &now
	u.RefreshToken = ""
	return nil
}
