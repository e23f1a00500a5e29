package dto

import (
	"recipehub/internal/model"
	"recipehub/internal/optional"
)

// SignupRequest represents a signup request.
type SignupRequest struct {
	UserID      string `json:"user_id" validate:"userid_len,userid_chars"`
	Password    string `json:"password" validate:"password_len,password_chars"`
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,email"`
	Description string `json:"description" validate:"notblank"`
}

// SigninRequest represents a login request.
type SigninRequest struct {
	UserID   string `json:"user_id" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ProfileUpdateRequest represents a profile update.
// NewPassword is optional; when absent the password is kept.
type ProfileUpdateRequest struct {
	Name            string                 `json:"name" validate:"notblank"`
	Description     string                 `json:"description" validate:"notblank"`
	CurrentPassword string                 `json:"current_password" validate:"required"`
	NewPassword     optional.Value[string] `json:"new_password" validate:"omitempty,password_len,password_chars"`
}

// PasswordRequest carries the password confirming a sensitive action.
type PasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// NewUserProfile maps a user to its profile view.
func NewUserProfile(u *model.User) *UserProfile {
	return &UserProfile{
		UserID:      u.LoginID,
		Name:        u.Name,
		Email:       u.Email,
		Description: u.Description,
	}
}

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
