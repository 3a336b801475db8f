package dto

import "walletlink/internal/models"

// RegisterRequest creates a new family together with its admin
type RegisterRequest struct {
	FirstName string `json:"firstname" validate:"required,notblank,max=100"`
	LastName  string `json:"lastname" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest changes the caller's name and email
type UpdateProfileRequest struct {
	FirstName string `json:"firstname" validate:"required,notblank,max=100"`
	LastName  string `json:"lastname" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AuthResponse is returned by register and login; the token is also set as a cookie
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	FamilyID  string `json:"familyId"`
}

func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      user.Role,
		Verified:  user.Verified,
		FamilyID:  user.FamilyID.String(),
	}
}

func NewUserResponses(users []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(users[i]))
	}
	return out
}
