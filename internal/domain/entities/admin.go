package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Admin is a back-office user with unrestricted CRUD rights
type Admin struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	ProfileImage null.String `json:"profileImage"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CreateAdminInput represents input for registering an admin
type CreateAdminInput struct {
	Name         string `json:"name" binding:"required,notblank,max=100"`
	Username     string `json:"username" binding:"required,username"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
}

// UpdateAdminInput carries the fields an admin profile update may change.
// Nil fields are left untouched; an empty profileImage clears it.
type UpdateAdminInput struct {
	Name         *string `json:"name" binding:"omitempty,notblank,max=100"`
	Username     *string `json:"username" binding:"omitempty,username"`
	ProfileImage *string `json:"profileImage" binding:"omitempty"`
}

// LoginInput represents input for admin login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     *Admin    `json:"admin"`
}

// ChangePasswordInput represents input for changing an admin password
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}
